package repository

import (
	"context"
	_ "embed"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/balance/model"
	db "github.com/msmkdenis/yap-poolledger/internal/database"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

//go:embed queries/insert_balance.sql
var insertBalance string

//go:embed queries/select_balance_by_user.sql
var selectBalanceByUser string

//go:embed queries/block_balance_by_user.sql
var blockBalanceByUser string

//go:embed queries/update_balance.sql
var updateBalance string

//go:embed queries/select_balances_total.sql
var selectBalancesTotal string

//go:embed queries/select_user_ids.sql
var selectUserIDs string

//go:embed queries/select_random_user_ids.sql
var selectRandomUserIDs string

type PostgresBalanceRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresBalanceRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresBalanceRepository {
	return &PostgresBalanceRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

func (r *PostgresBalanceRepository) Insert(ctx context.Context, balance model.Balance) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, insertBalance,
		balance.ID, balance.UserID, balance.Available, balance.Pending, balance.Reserved, balance.Withdrawn)

	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
		return apperrors.ErrBalanceAlreadyExists
	}

	if err != nil {
		return apperrors.NewValueError("insert failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresBalanceRepository) SelectByUserID(ctx context.Context, userID string) (*model.Balance, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)
	return scanBalance(conn.QueryRow(ctx, selectBalanceByUser, userID))
}

// SelectByUserIDForUpdate locks the user's row until the surrounding
// transaction ends. It must be called inside TxManager.Do.
func (r *PostgresBalanceRepository) SelectByUserIDForUpdate(ctx context.Context, userID string) (*model.Balance, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)
	return scanBalance(conn.QueryRow(ctx, blockBalanceByUser, userID))
}

func (r *PostgresBalanceRepository) Update(ctx context.Context, balance model.Balance) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	tag, err := conn.Exec(ctx, updateBalance,
		balance.UserID, balance.Available, balance.Pending, balance.Reserved, balance.Withdrawn)

	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.CheckViolation {
		return apperrors.NewInsufficientBalanceError("user balance", decimal.Zero, balance.Available)
	}

	if err != nil {
		return apperrors.NewValueError("update failed", utils.Caller(), err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrBalanceNotFound
	}

	return nil
}

// SelectTotal returns the sum of available, pending and reserved across all
// users together with the number of balance rows.
func (r *PostgresBalanceRepository) SelectTotal(ctx context.Context) (decimal.Decimal, int64, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	var total decimal.Decimal
	var count int64
	if err := conn.QueryRow(ctx, selectBalancesTotal).Scan(&total, &count); err != nil {
		return decimal.Zero, 0, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return total, count, nil
}

func (r *PostgresBalanceRepository) SelectUserIDs(ctx context.Context) ([]string, error) {
	return r.collectUserIDs(ctx, selectUserIDs)
}

func (r *PostgresBalanceRepository) SelectRandomUserIDs(ctx context.Context, limit int) ([]string, error) {
	return r.collectUserIDs(ctx, selectRandomUserIDs, limit)
}

func (r *PostgresBalanceRepository) collectUserIDs(ctx context.Context, query string, args ...any) ([]string, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	queryRows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	userIDs, err := pgx.CollectRows(queryRows, pgx.RowTo[string])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return userIDs, nil
}

func scanBalance(row pgx.Row) (*model.Balance, error) {
	var balance model.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.Available, &balance.Pending,
		&balance.Reserved, &balance.Withdrawn, &balance.CreatedAt, &balance.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBalanceNotFound
		}
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return &balance, nil
}
