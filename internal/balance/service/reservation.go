package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/metrics"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

var errReservationAbandoned = errors.New("reservation abandoned")

// ReservationHooks run inside the same database transaction as the balance
// change they accompany, typically to open and resolve a ledger entry.
type ReservationHooks struct {
	OnReserve func(ctx context.Context) error
	OnCommit  func(ctx context.Context) error
	OnRelease func(ctx context.Context, cause error) error
}

type reservationState int

const (
	reservationOpen reservationState = iota
	reservationCommitted
	reservationReleased
	// reservationBroken means a terminal step failed at the database level.
	// Funds stay reserved and are left to reconciliation.
	reservationBroken
)

// Reservation is a handle on funds parked in reserved. Exactly one of Commit
// or Release takes effect; Close releases a handle nobody resolved.
type Reservation struct {
	balances *BalanceUseCase
	userID   string
	amount   decimal.Decimal
	hooks    ReservationHooks

	mu    sync.Mutex
	state reservationState
}

func (b *BalanceUseCase) Reserve(ctx context.Context, userID string, amount decimal.Decimal, hooks ReservationHooks) (*Reservation, error) {
	err := b.trManager.Do(ctx, func(ctx context.Context) error {
		if err := b.ReserveFunds(ctx, userID, amount); err != nil {
			return err
		}
		if hooks.OnReserve != nil {
			return hooks.OnReserve(ctx)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) {
			b.RecordReservation(metrics.ReservationRejected, userID, amount)
		}
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	b.RecordReservation(metrics.ReservationReserved, userID, amount)

	return &Reservation{
		balances: b,
		userID:   userID,
		amount:   amount,
		hooks:    hooks,
	}, nil
}

func (r *Reservation) UserID() string {
	return r.userID
}

func (r *Reservation) Amount() decimal.Decimal {
	return r.amount
}

// Commit consumes the reservation. It runs even when ctx was cancelled and
// is not followed by a release on failure: the external side effect already
// happened.
func (r *Reservation) Commit(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != reservationOpen {
		return apperrors.ErrReservationAlreadyResolved
	}

	ctx = context.WithoutCancel(ctx)

	// OnCommit runs before the user row is touched so a pool lock taken by
	// the hook precedes the user lock.
	err := r.balances.trManager.Do(ctx, func(ctx context.Context) error {
		if r.hooks.OnCommit != nil {
			if err := r.hooks.OnCommit(ctx); err != nil {
				return err
			}
		}
		return r.balances.CompleteReservedTransaction(ctx, r.userID, r.amount)
	})
	if err != nil {
		r.state = reservationBroken
		r.balances.metrics.Reservation(metrics.ReservationCommitFailed)
		r.balances.logger.Error("Unable to commit reservation, funds left reserved",
			zap.String("user_id", r.userID), zap.Stringer("amount", r.amount), zap.Error(err))
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	r.state = reservationCommitted
	r.balances.RecordReservation(metrics.ReservationCommitted, r.userID, r.amount)
	return nil
}

// Release returns the funds to available. It runs even when ctx was
// cancelled, since a cancelled request is the usual reason to release.
func (r *Reservation) Release(ctx context.Context, cause error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != reservationOpen {
		return apperrors.ErrReservationAlreadyResolved
	}

	ctx = context.WithoutCancel(ctx)
	err := r.balances.trManager.Do(ctx, func(ctx context.Context) error {
		if err := r.balances.ReleaseReservedFunds(ctx, r.userID, r.amount); err != nil {
			return err
		}
		if r.hooks.OnRelease != nil {
			return r.hooks.OnRelease(ctx, cause)
		}
		return nil
	})
	if err != nil {
		r.state = reservationBroken
		r.balances.metrics.Reservation(metrics.ReservationReleaseFailed)
		r.balances.logger.Error("Unable to release reservation, funds left reserved",
			zap.String("user_id", r.userID), zap.Stringer("amount", r.amount), zap.Error(err))
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	r.state = reservationReleased
	r.balances.RecordReservation(metrics.ReservationReleased, r.userID, r.amount)
	return nil
}

// Close releases the reservation if it is still open. Safe to defer.
func (r *Reservation) Close(ctx context.Context) error {
	r.mu.Lock()
	open := r.state == reservationOpen
	r.mu.Unlock()

	if !open {
		return nil
	}

	return r.Release(ctx, errReservationAbandoned)
}

// WithReservation reserves amount, runs fn and resolves the reservation:
// commit when fn succeeds, release when it fails or panics.
func (b *BalanceUseCase) WithReservation(
	ctx context.Context,
	userID string,
	amount decimal.Decimal,
	hooks ReservationHooks,
	fn func(ctx context.Context) error,
) error {
	reservation, err := b.Reserve(ctx, userID, amount, hooks)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			if errRelease := reservation.Release(ctx, fmt.Errorf("panic: %v", p)); errRelease != nil {
				b.logger.Error("Unable to release reservation after panic", zap.Error(errRelease))
			}
			panic(p)
		}
	}()

	if errFn := fn(ctx); errFn != nil {
		if errRelease := reservation.Release(ctx, errFn); errRelease != nil {
			return errors.Join(errFn, errRelease)
		}
		return errFn
	}

	return reservation.Commit(ctx)
}
