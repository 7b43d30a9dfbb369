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
	"github.com/msmkdenis/yap-poolledger/internal/payout/model"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

//go:embed queries/insert_payout.sql
var insertPayout string

//go:embed queries/select_payout_by_id.sql
var selectPayoutByID string

//go:embed queries/block_payout_by_id.sql
var blockPayoutByID string

//go:embed queries/update_payout.sql
var updatePayout string

//go:embed queries/select_payouts_by_user.sql
var selectPayoutsByUser string

//go:embed queries/select_payouts_by_status.sql
var selectPayoutsByStatus string

type PostgresPayoutRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresPayoutRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresPayoutRepository {
	return &PostgresPayoutRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

func (r *PostgresPayoutRepository) Insert(ctx context.Context, payout *model.PayoutRequest) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	err := conn.QueryRow(ctx, insertPayout,
		payout.ID, payout.UserID, payout.Amount, payout.Status, payout.LedgerEntryID).
		Scan(&payout.CreatedAt)
	if err != nil {
		return apperrors.NewValueError("insert failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresPayoutRepository) SelectByID(ctx context.Context, id string) (*model.PayoutRequest, error) {
	return r.collectOne(ctx, selectPayoutByID, id)
}

func (r *PostgresPayoutRepository) SelectByIDForUpdate(ctx context.Context, id string) (*model.PayoutRequest, error) {
	return r.collectOne(ctx, blockPayoutByID, id)
}

func (r *PostgresPayoutRepository) Update(ctx context.Context, payout model.PayoutRequest) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	tag, err := conn.Exec(ctx, updatePayout,
		payout.ID, payout.Status, payout.GatewayReference, payout.ProcessedBy,
		payout.FailureReason, payout.ProcessingAt, payout.ResolvedAt)
	if err != nil {
		return apperrors.NewValueError("update failed", utils.Caller(), err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrPayoutNotFound
	}

	return nil
}

func (r *PostgresPayoutRepository) SelectByUser(ctx context.Context, userID string) ([]model.PayoutRequest, error) {
	return r.collect(ctx, selectPayoutsByUser, userID)
}

func (r *PostgresPayoutRepository) SelectByStatus(ctx context.Context, status model.Status, limit int) ([]model.PayoutRequest, error) {
	return r.collect(ctx, selectPayoutsByStatus, status, limit)
}

func (r *PostgresPayoutRepository) collectOne(ctx context.Context, query string, id string) (*model.PayoutRequest, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	queryRows, err := conn.Query(ctx, query, id)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	payout, err := pgx.CollectOneRow(queryRows, pgx.RowToStructByPos[model.PayoutRequest])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPayoutNotFound
		}
		return nil, apperrors.NewValueError("unable to collect row", utils.Caller(), err)
	}

	return &payout, nil
}

func (r *PostgresPayoutRepository) collect(ctx context.Context, query string, args ...any) ([]model.PayoutRequest, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	queryRows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	payouts, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.PayoutRequest])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return payouts, nil
}
