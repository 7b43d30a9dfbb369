package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/balance/model"
	ledger "github.com/msmkdenis/yap-poolledger/internal/ledger/model"
	"github.com/msmkdenis/yap-poolledger/internal/metrics"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

const (
	summaryWindow  = 30 * 24 * time.Hour
	summaryEntries = 10
)

// BalanceRepository mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_balance_repository.go -package=mock github.com/msmkdenis/yap-poolledger/internal/balance/service BalanceRepository
type BalanceRepository interface {
	Insert(ctx context.Context, balance model.Balance) error
	SelectByUserID(ctx context.Context, userID string) (*model.Balance, error)
	SelectByUserIDForUpdate(ctx context.Context, userID string) (*model.Balance, error)
	Update(ctx context.Context, balance model.Balance) error
}

// LedgerReader mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_ledger_reader.go -package=mock github.com/msmkdenis/yap-poolledger/internal/balance/service LedgerReader
type LedgerReader interface {
	ActivitySince(ctx context.Context, userID string, since time.Time) ([]ledger.TypeTotal, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]ledger.Entry, error)
}

type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// BalanceUseCase is the only writer of account balances. Every mutation is a
// single locked read-modify-write of the user's row.
type BalanceUseCase struct {
	repository BalanceRepository
	ledger     LedgerReader
	trManager  TransactionManager
	metrics    *metrics.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

func NewBalanceService(
	repository BalanceRepository,
	ledger LedgerReader,
	trManager TransactionManager,
	metrics *metrics.Metrics,
	logger *zap.Logger,
) *BalanceUseCase {
	return &BalanceUseCase{
		repository: repository,
		ledger:     ledger,
		trManager:  trManager,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

func (b *BalanceUseCase) InitializeBalance(ctx context.Context, userID string) (*model.Balance, error) {
	balance := model.NewBalance(uuid.New().String(), userID)

	if err := b.repository.Insert(ctx, balance); err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	b.logger.Info("Balance initialized", zap.String("user_id", userID))

	return &balance, nil
}

func (b *BalanceUseCase) GetBalance(ctx context.Context, userID string) (*model.Balance, error) {
	balance, err := b.repository.SelectByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return balance, nil
}

func (b *BalanceUseCase) CheckSufficientBalance(ctx context.Context, userID string, amount decimal.Decimal) (bool, error) {
	balance, err := b.GetBalance(ctx, userID)
	if err != nil {
		return false, err
	}

	return balance.HasAvailable(amount), nil
}

// ReserveFunds, CompleteReservedTransaction and ReleaseReservedFunds are
// steps of a caller's transaction. The caller reports the outcome with
// RecordReservation once that transaction has committed.
func (b *BalanceUseCase) ReserveFunds(ctx context.Context, userID string, amount decimal.Decimal) error {
	_, err := b.mutate(ctx, userID, func(balance *model.Balance) error {
		return balance.Reserve(amount)
	})

	return err
}

func (b *BalanceUseCase) CompleteReservedTransaction(ctx context.Context, userID string, amount decimal.Decimal) error {
	_, err := b.mutate(ctx, userID, func(balance *model.Balance) error {
		return balance.CompleteReserved(amount)
	})

	return err
}

func (b *BalanceUseCase) ReleaseReservedFunds(ctx context.Context, userID string, amount decimal.Decimal) error {
	_, err := b.mutate(ctx, userID, func(balance *model.Balance) error {
		return balance.ReleaseReserved(amount)
	})

	return err
}

// RecordReservation counts and logs a reservation outcome that is already
// durable.
func (b *BalanceUseCase) RecordReservation(outcome string, userID string, amount decimal.Decimal) {
	b.metrics.Reservation(outcome)
	b.logger.Info("Reservation "+outcome, zap.String("user_id", userID), zap.Stringer("amount", amount))
}

// RecordWithdrawal updates the lifetime withdrawn counter after a payout's
// reservation was completed. It does not move funds.
func (b *BalanceUseCase) RecordWithdrawal(ctx context.Context, userID string, amount decimal.Decimal) error {
	_, err := b.mutate(ctx, userID, func(balance *model.Balance) error {
		return balance.RecordWithdrawal(amount)
	})

	return err
}

// CreditAvailable adds funds straight to available. Only pool allocation
// calls it, inside the transaction that debits the pool.
func (b *BalanceUseCase) CreditAvailable(ctx context.Context, userID string, amount decimal.Decimal) (*model.Balance, error) {
	return b.mutate(ctx, userID, func(balance *model.Balance) error {
		return balance.Credit(amount)
	})
}

func (b *BalanceUseCase) GetBalanceSummary(ctx context.Context, userID string) (*model.Summary, error) {
	balance, err := b.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	since := b.now().Add(-summaryWindow)

	activity, err := b.ledger.ActivitySince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	recent, err := b.ledger.ListByUser(ctx, userID, summaryEntries)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return &model.Summary{
		Balance:  *balance,
		Since:    since,
		Activity: activity,
		Recent:   recent,
	}, nil
}

func (b *BalanceUseCase) mutate(ctx context.Context, userID string, change func(balance *model.Balance) error) (*model.Balance, error) {
	var updated *model.Balance
	err := b.trManager.Do(ctx, func(ctx context.Context) error {
		balance, err := b.repository.SelectByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		if err = change(balance); err != nil {
			return err
		}

		if err = b.repository.Update(ctx, *balance); err != nil {
			return err
		}

		updated = balance
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return updated, nil
}
