package repository

import (
	"context"
	_ "embed"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	db "github.com/msmkdenis/yap-poolledger/internal/database"
	"github.com/msmkdenis/yap-poolledger/internal/pool/model"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

//go:embed queries/insert_pool.sql
var insertPool string

//go:embed queries/select_pool.sql
var selectPool string

//go:embed queries/block_pool.sql
var blockPool string

//go:embed queries/update_pool.sql
var updatePool string

type PostgresPoolRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresPoolRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresPoolRepository {
	return &PostgresPoolRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

// Insert creates the singleton row. It reports whether a row was written.
func (r *PostgresPoolRepository) Insert(ctx context.Context, pool model.PoolAccount) (bool, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	tag, err := conn.Exec(ctx, insertPool,
		pool.ID, pool.GatewayAccountID, pool.Total, pool.Allocated, pool.Reserved, pool.Unallocated)
	if err != nil {
		return false, apperrors.NewValueError("insert failed", utils.Caller(), err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *PostgresPoolRepository) Select(ctx context.Context) (*model.PoolAccount, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)
	return scanPool(conn.QueryRow(ctx, selectPool, model.SingletonID))
}

// SelectForUpdate takes the pool lock until the surrounding transaction ends.
func (r *PostgresPoolRepository) SelectForUpdate(ctx context.Context) (*model.PoolAccount, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)
	return scanPool(conn.QueryRow(ctx, blockPool, model.SingletonID))
}

func (r *PostgresPoolRepository) Update(ctx context.Context, pool *model.PoolAccount) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	err := conn.QueryRow(ctx, updatePool,
		pool.ID, pool.Total, pool.Allocated, pool.Reserved, pool.Unallocated, pool.Unsettled, pool.LastSyncedAt).
		Scan(&pool.UpdatedAt)

	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.CheckViolation {
		return apperrors.NewInvalidStateError("pool account", e.ConstraintName, "update")
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrPoolNotFound
	}

	if err != nil {
		return apperrors.NewValueError("update failed", utils.Caller(), err)
	}

	return nil
}

func scanPool(row pgx.Row) (*model.PoolAccount, error) {
	var pool model.PoolAccount
	err := row.Scan(&pool.ID, &pool.GatewayAccountID, &pool.Total, &pool.Allocated,
		&pool.Reserved, &pool.Unallocated, &pool.Unsettled, &pool.LastSyncedAt, &pool.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPoolNotFound
		}
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return &pool, nil
}
