package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	balance "github.com/msmkdenis/yap-poolledger/internal/balance/model"
	balanceRepository "github.com/msmkdenis/yap-poolledger/internal/balance/repository"
	db "github.com/msmkdenis/yap-poolledger/internal/database"
	"github.com/msmkdenis/yap-poolledger/internal/ledger/model"
	payout "github.com/msmkdenis/yap-poolledger/internal/payout/model"
	payoutRepository "github.com/msmkdenis/yap-poolledger/internal/payout/repository"
)

func setupPostgres(t *testing.T) (*db.PostgresPool, *zap.Logger) {
	t.Helper()

	connection := os.Getenv("TEST_DATABASE_URI")
	if connection == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}

	logger := zap.NewNop()
	migrations, err := db.NewMigrations(connection, logger)
	require.NoError(t, err)
	require.NoError(t, migrations.MigrateUp())

	pool, err := db.NewPostgresPool(connection, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool, logger
}

func TestSelectStalePendingIncludesProcessingPayouts(t *testing.T) {
	pool, logger := setupPostgres(t)
	ledgers := NewPostgresLedgerRepository(pool, logger)
	payouts := payoutRepository.NewPostgresPayoutRepository(pool, logger)
	ctx := context.Background()

	userID := uuid.New().String()
	require.NoError(t, balanceRepository.NewPostgresBalanceRepository(pool, logger).
		Insert(ctx, balance.NewBalance(uuid.New().String(), userID)))

	insertEntry := func(entryType model.EntryType) string {
		entry := &model.Entry{
			ID:     uuid.New().String(),
			UserID: userID,
			Type:   entryType,
			Amount: decimal.NewFromInt(10),
			Status: model.StatusPending,
		}
		require.NoError(t, ledgers.Insert(ctx, entry))
		return entry.ID
	}

	now := time.Now().UTC()
	insertPayout := func(status payout.Status, processingAt *time.Time) string {
		request := &payout.PayoutRequest{
			ID:            uuid.New().String(),
			UserID:        userID,
			Amount:        decimal.NewFromInt(10),
			Status:        payout.StatusPending,
			LedgerEntryID: insertEntry(model.TypePayout),
		}
		require.NoError(t, payouts.Insert(ctx, request))
		request.Status = status
		request.ProcessingAt = processingAt
		require.NoError(t, payouts.Update(ctx, *request))
		return request.LedgerEntryID
	}

	longAgo := now.Add(-time.Hour)
	recently := now.Add(-5 * time.Minute)
	sale := insertEntry(model.TypeSale)
	awaitingApproval := insertPayout(payout.StatusPending, nil)
	stuckPayout := insertPayout(payout.StatusProcessing, &longAgo)
	freshPayout := insertPayout(payout.StatusProcessing, &recently)

	_, err := pool.DB.Exec(ctx,
		"update ledger_entries set created_at = now() - interval '2 hours' where user_id = $1", userID)
	require.NoError(t, err)

	entries, err := ledgers.SelectStalePending(ctx, now.Add(-30*time.Minute), 10000)
	require.NoError(t, err)

	found := make(map[string]model.EntryType)
	for _, entry := range entries {
		if entry.UserID == userID {
			found[entry.ID] = entry.Type
		}
	}

	assert.Equal(t, map[string]model.EntryType{
		sale:        model.TypeSale,
		stuckPayout: model.TypePayout,
	}, found)
	assert.NotContains(t, found, awaitingApproval)
	assert.NotContains(t, found, freshPayout)
}
