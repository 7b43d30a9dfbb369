package repository

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/balance/model"
	"github.com/msmkdenis/yap-poolledger/internal/balance/service"
	db "github.com/msmkdenis/yap-poolledger/internal/database"
	"github.com/msmkdenis/yap-poolledger/internal/metrics"
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

func TestInsertTwice(t *testing.T) {
	pool, logger := setupPostgres(t)
	repository := NewPostgresBalanceRepository(pool, logger)
	ctx := context.Background()

	balance := model.NewBalance(uuid.New().String(), uuid.New().String())
	require.NoError(t, repository.Insert(ctx, balance))

	balance.ID = uuid.New().String()
	assert.ErrorIs(t, repository.Insert(ctx, balance), apperrors.ErrBalanceAlreadyExists)
}

func TestSelectMissingBalance(t *testing.T) {
	pool, logger := setupPostgres(t)
	repository := NewPostgresBalanceRepository(pool, logger)

	_, err := repository.SelectByUserID(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, apperrors.ErrBalanceNotFound)
}

func TestUpdateRejectsNegativeAvailable(t *testing.T) {
	pool, logger := setupPostgres(t)
	repository := NewPostgresBalanceRepository(pool, logger)
	ctx := context.Background()

	balance := model.NewBalance(uuid.New().String(), uuid.New().String())
	require.NoError(t, repository.Insert(ctx, balance))

	balance.Available = decimal.NewFromInt(-1)
	assert.ErrorIs(t, repository.Update(ctx, balance), apperrors.ErrInsufficientBalance)
}

// Two concurrent reservations of 80 against 100 available: exactly one wins.
func TestConcurrentReservationsNeverDoubleSpend(t *testing.T) {
	pool, logger := setupPostgres(t)
	repository := NewPostgresBalanceRepository(pool, logger)
	balances := service.NewBalanceService(repository, nil, db.NewTxManager(pool),
		metrics.New(prometheus.NewRegistry()), logger)
	ctx := context.Background()

	userID := uuid.New().String()
	_, err := balances.InitializeBalance(ctx, userID)
	require.NoError(t, err)
	_, err = balances.CreditAvailable(ctx, userID, decimal.NewFromInt(100))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = balances.ReserveFunds(ctx, userID, decimal.NewFromInt(80))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
	}
	assert.Equal(t, 1, succeeded)

	balance, err := repository.SelectByUserID(ctx, userID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(20).Equal(balance.Available))
	assert.True(t, decimal.NewFromInt(80).Equal(balance.Reserved))
}
