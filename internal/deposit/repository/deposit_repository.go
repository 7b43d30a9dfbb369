package repository

import (
	"context"
	_ "embed"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	db "github.com/msmkdenis/yap-poolledger/internal/database"
	"github.com/msmkdenis/yap-poolledger/internal/deposit/model"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

//go:embed queries/insert_deposit.sql
var insertDeposit string

//go:embed queries/select_deposit_by_id.sql
var selectDepositByID string

//go:embed queries/block_deposit_by_id.sql
var blockDepositByID string

//go:embed queries/update_deposit.sql
var updateDeposit string

//go:embed queries/select_deposits_by_user.sql
var selectDepositsByUser string

//go:embed queries/select_deposits_by_status.sql
var selectDepositsByStatus string

type PostgresDepositRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresDepositRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresDepositRepository {
	return &PostgresDepositRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

func (r *PostgresDepositRepository) Insert(ctx context.Context, deposit *model.DepositRequest) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	err := conn.QueryRow(ctx, insertDeposit,
		deposit.ID, deposit.UserID, deposit.Amount, deposit.Status, deposit.LedgerEntryID).
		Scan(&deposit.CreatedAt)
	if err != nil {
		return apperrors.NewValueError("insert failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresDepositRepository) SelectByID(ctx context.Context, id string) (*model.DepositRequest, error) {
	return r.collectOne(ctx, selectDepositByID, id)
}

// SelectByIDForUpdate locks the request row. Resolving a deposit takes this
// lock before the pool and user locks.
func (r *PostgresDepositRepository) SelectByIDForUpdate(ctx context.Context, id string) (*model.DepositRequest, error) {
	return r.collectOne(ctx, blockDepositByID, id)
}

func (r *PostgresDepositRepository) Update(ctx context.Context, deposit model.DepositRequest) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	tag, err := conn.Exec(ctx, updateDeposit,
		deposit.ID, deposit.Status, deposit.ApprovedBy, deposit.RejectedReason, deposit.ResolvedAt)
	if err != nil {
		return apperrors.NewValueError("update failed", utils.Caller(), err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrDepositNotFound
	}

	return nil
}

func (r *PostgresDepositRepository) SelectByUser(ctx context.Context, userID string) ([]model.DepositRequest, error) {
	return r.collect(ctx, selectDepositsByUser, userID)
}

func (r *PostgresDepositRepository) SelectByStatus(ctx context.Context, status model.Status, limit int) ([]model.DepositRequest, error) {
	return r.collect(ctx, selectDepositsByStatus, status, limit)
}

func (r *PostgresDepositRepository) collectOne(ctx context.Context, query string, id string) (*model.DepositRequest, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	queryRows, err := conn.Query(ctx, query, id)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	deposit, err := pgx.CollectOneRow(queryRows, pgx.RowToStructByPos[model.DepositRequest])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepositNotFound
		}
		return nil, apperrors.NewValueError("unable to collect row", utils.Caller(), err)
	}

	return &deposit, nil
}

func (r *PostgresDepositRepository) collect(ctx context.Context, query string, args ...any) ([]model.DepositRequest, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	queryRows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	deposits, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.DepositRequest])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return deposits, nil
}
