package repository

import (
	"context"
	_ "embed"
	"errors"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	db "github.com/msmkdenis/yap-poolledger/internal/database"
	"github.com/msmkdenis/yap-poolledger/internal/ledger/model"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

//go:embed queries/insert_entry.sql
var insertEntry string

//go:embed queries/select_entry_by_id.sql
var selectEntryByID string

//go:embed queries/complete_entry.sql
var completeEntry string

//go:embed queries/fail_entry.sql
var failEntry string

//go:embed queries/select_completed_totals_by_user.sql
var selectCompletedTotalsByUser string

//go:embed queries/select_totals_by_user_since.sql
var selectTotalsByUserSince string

//go:embed queries/select_entries_by_user.sql
var selectEntriesByUser string

//go:embed queries/select_stale_pending.sql
var selectStalePending string

type PostgresLedgerRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresLedgerRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresLedgerRepository {
	return &PostgresLedgerRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

func (r *PostgresLedgerRepository) Insert(ctx context.Context, entry *model.Entry) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	err := conn.QueryRow(ctx, insertEntry,
		entry.ID, entry.UserID, entry.Type, entry.Amount, entry.Status,
		entry.Description, entry.Reference, metadata).
		Scan(&entry.CreatedAt, &entry.CompletedAt)
	if err != nil {
		return apperrors.NewValueError("insert failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresLedgerRepository) SelectByID(ctx context.Context, id string) (*model.Entry, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	queryRows, err := conn.Query(ctx, selectEntryByID, id)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	entry, err := pgx.CollectOneRow(queryRows, pgx.RowToStructByPos[model.Entry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, apperrors.NewValueError("unable to collect row", utils.Caller(), err)
	}

	return &entry, nil
}

// Complete flips a PENDING entry to COMPLETED and merges metadata into the
// stored one. Terminal entries are never touched.
func (r *PostgresLedgerRepository) Complete(ctx context.Context, id string, metadata map[string]any) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	if metadata == nil {
		metadata = map[string]any{}
	}

	tag, err := conn.Exec(ctx, completeEntry, id, metadata)
	if err != nil {
		return apperrors.NewValueError("update failed", utils.Caller(), err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.NewInvalidStateError("ledger entry "+id, "terminal or missing", "complete")
	}

	return nil
}

// Fail moves a PENDING entry to FAILED or CANCELLED.
func (r *PostgresLedgerRepository) Fail(ctx context.Context, id string, status model.Status, reason string) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	tag, err := conn.Exec(ctx, failEntry, id, status, reason)
	if err != nil {
		return apperrors.NewValueError("update failed", utils.Caller(), err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.NewInvalidStateError("ledger entry "+id, "terminal or missing", string(status))
	}

	return nil
}

func (r *PostgresLedgerRepository) SelectCompletedTotalsByUser(ctx context.Context, userID string) ([]model.TypeTotal, error) {
	return r.collectTotals(ctx, selectCompletedTotalsByUser, userID)
}

func (r *PostgresLedgerRepository) SelectTotalsByUserSince(ctx context.Context, userID string, since time.Time) ([]model.TypeTotal, error) {
	return r.collectTotals(ctx, selectTotalsByUserSince, userID, since)
}

func (r *PostgresLedgerRepository) SelectByUser(ctx context.Context, userID string, limit int) ([]model.Entry, error) {
	return r.collectEntries(ctx, selectEntriesByUser, userID, limit)
}

func (r *PostgresLedgerRepository) SelectStalePending(ctx context.Context, before time.Time, limit int) ([]model.Entry, error) {
	return r.collectEntries(ctx, selectStalePending, before, limit)
}

func (r *PostgresLedgerRepository) collectTotals(ctx context.Context, query string, args ...any) ([]model.TypeTotal, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	queryRows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	totals, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.TypeTotal])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return totals, nil
}

func (r *PostgresLedgerRepository) collectEntries(ctx context.Context, query string, args ...any) ([]model.Entry, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	queryRows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	entries, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.Entry])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return entries, nil
}
