package service

import (
	"context"
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
)

type hookCalls struct {
	reserved  int
	committed int
	released  int
	cause     error
}

func (h *hookCalls) hooks() ReservationHooks {
	return ReservationHooks{
		OnReserve: func(_ context.Context) error {
			h.reserved++
			return nil
		},
		OnCommit: func(_ context.Context) error {
			h.committed++
			return nil
		},
		OnRelease: func(_ context.Context, cause error) error {
			h.released++
			h.cause = cause
			return nil
		},
	}
}

func (b *BalanceServiceSuite) TestWithReservationCommits() {
	calls := &hookCalls{}

	err := b.s.WithReservation(context.Background(), "user-1", decimal.NewFromInt(40), calls.hooks(), func(_ context.Context) error {
		b.assertBalance(60, 40)
		return nil
	})
	require.NoError(b.T(), err)

	b.assertBalance(60, 0)
	assert.Equal(b.T(), 1, calls.reserved)
	assert.Equal(b.T(), 1, calls.committed)
	assert.Equal(b.T(), 0, calls.released)
}

func (b *BalanceServiceSuite) TestWithReservationReleasesOnError() {
	calls := &hookCalls{}
	errProvider := errors.New("provider timeout")

	err := b.s.WithReservation(context.Background(), "user-1", decimal.NewFromInt(40), calls.hooks(), func(_ context.Context) error {
		return errProvider
	})

	assert.ErrorIs(b.T(), err, errProvider)
	b.assertBalance(100, 0)
	assert.Equal(b.T(), 0, calls.committed)
	assert.Equal(b.T(), 1, calls.released)
	assert.ErrorIs(b.T(), calls.cause, errProvider)
}

func (b *BalanceServiceSuite) TestWithReservationReleasesOnPanic() {
	calls := &hookCalls{}

	assert.Panics(b.T(), func() {
		_ = b.s.WithReservation(context.Background(), "user-1", decimal.NewFromInt(40), calls.hooks(), func(_ context.Context) error {
			panic("executor bug")
		})
	})

	b.assertBalance(100, 0)
	assert.Equal(b.T(), 1, calls.released)
}

func (b *BalanceServiceSuite) TestWithReservationInsufficientSkipsWork() {
	calls := &hookCalls{}
	ran := false

	err := b.s.WithReservation(context.Background(), "user-1", decimal.NewFromInt(500), calls.hooks(), func(_ context.Context) error {
		ran = true
		return nil
	})

	assert.ErrorIs(b.T(), err, apperrors.ErrInsufficientBalance)
	assert.False(b.T(), ran)
	assert.Equal(b.T(), 0, calls.reserved)
	b.assertBalance(100, 0)
}

// available + reserved must not change across any reserve/resolve sequence.
func (b *BalanceServiceSuite) TestReservationConservesFunds() {
	total := b.stored.Total()
	ctx := context.Background()

	first, err := b.s.Reserve(ctx, "user-1", decimal.NewFromInt(30), ReservationHooks{})
	require.NoError(b.T(), err)
	second, err := b.s.Reserve(ctx, "user-1", decimal.NewFromInt(50), ReservationHooks{})
	require.NoError(b.T(), err)
	assert.True(b.T(), total.Equal(b.stored.Total()))
	b.assertBalance(20, 80)

	require.NoError(b.T(), first.Release(ctx, nil))
	assert.True(b.T(), total.Equal(b.stored.Total()))
	b.assertBalance(50, 50)

	require.NoError(b.T(), second.Commit(ctx))
	b.assertBalance(50, 0)
	assert.True(b.T(), total.Sub(decimal.NewFromInt(50)).Equal(b.stored.Total()))
}

func (b *BalanceServiceSuite) TestReservationResolvesOnce() {
	ctx := context.Background()
	reservation, err := b.s.Reserve(ctx, "user-1", decimal.NewFromInt(10), ReservationHooks{})
	require.NoError(b.T(), err)

	require.NoError(b.T(), reservation.Commit(ctx))

	assert.ErrorIs(b.T(), reservation.Commit(ctx), apperrors.ErrReservationAlreadyResolved)
	assert.ErrorIs(b.T(), reservation.Release(ctx, nil), apperrors.ErrReservationAlreadyResolved)
	assert.NoError(b.T(), reservation.Close(ctx))
	b.assertBalance(90, 0)
}

func (b *BalanceServiceSuite) TestFailedCommitIsNotReleased() {
	ctx := context.Background()
	reservation, err := b.s.Reserve(ctx, "user-1", decimal.NewFromInt(40), ReservationHooks{})
	require.NoError(b.T(), err)

	b.failUpdate = errors.New("connection reset")
	assert.Error(b.T(), reservation.Commit(ctx))
	b.failUpdate = nil

	assert.NoError(b.T(), reservation.Close(ctx))
	assert.ErrorIs(b.T(), reservation.Release(ctx, nil), apperrors.ErrReservationAlreadyResolved)
	b.assertBalance(60, 40)
}

func (b *BalanceServiceSuite) TestCloseReleasesAbandonedReservation() {
	ctx, cancel := context.WithCancel(context.Background())
	reservation, err := b.s.Reserve(ctx, "user-1", decimal.NewFromInt(40), ReservationHooks{})
	require.NoError(b.T(), err)
	cancel()

	require.NoError(b.T(), reservation.Close(ctx))

	b.assertBalance(100, 0)
}

// The caller gives up while the purchase is delivered. The delivery already
// happened, so the reservation must still be consumed.
func (b *BalanceServiceSuite) TestWithReservationCommitsAfterCallerCancels() {
	b.s.trManager = cancelAwareTx{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	calls := &hookCalls{}

	err := b.s.WithReservation(ctx, "user-1", decimal.NewFromInt(40), calls.hooks(), func(_ context.Context) error {
		cancel()
		return nil
	})
	require.NoError(b.T(), err)

	b.assertBalance(60, 0)
	assert.Equal(b.T(), 1, calls.committed)
	assert.Equal(b.T(), 0, calls.released)
}

func (b *BalanceServiceSuite) TestReservationMetricsCountCommittedOutcomes() {
	ctx := context.Background()

	_, err := b.s.Reserve(ctx, "user-1", decimal.NewFromInt(10), ReservationHooks{
		OnReserve: func(_ context.Context) error { return errors.New("ledger unavailable") },
	})
	require.Error(b.T(), err)

	reservation, err := b.s.Reserve(ctx, "user-1", decimal.NewFromInt(20), ReservationHooks{})
	require.NoError(b.T(), err)
	require.NoError(b.T(), reservation.Release(ctx, nil))

	_, err = b.s.Reserve(ctx, "user-1", decimal.NewFromInt(500), ReservationHooks{})
	require.ErrorIs(b.T(), err, apperrors.ErrInsufficientBalance)

	expected := `
# HELP pool_ledger_reservations_total Reservation lifecycle events by outcome.
# TYPE pool_ledger_reservations_total counter
pool_ledger_reservations_total{outcome="rejected"} 1
pool_ledger_reservations_total{outcome="released"} 1
pool_ledger_reservations_total{outcome="reserved"} 1
`
	assert.NoError(b.T(), testutil.GatherAndCompare(b.registry, strings.NewReader(expected), "pool_ledger_reservations_total"))
}
