package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	balance "github.com/msmkdenis/yap-poolledger/internal/balance/model"
	"github.com/msmkdenis/yap-poolledger/internal/deposit/model"
	ledger "github.com/msmkdenis/yap-poolledger/internal/ledger/model"
	pool "github.com/msmkdenis/yap-poolledger/internal/pool/model"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

const (
	pendingPageSize = 100
	cancelledByUser = "cancelled by user"
)

// DepositRepository mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_deposit_repository.go -package=mock github.com/msmkdenis/yap-poolledger/internal/deposit/service DepositRepository
type DepositRepository interface {
	Insert(ctx context.Context, deposit *model.DepositRequest) error
	SelectByID(ctx context.Context, id string) (*model.DepositRequest, error)
	SelectByIDForUpdate(ctx context.Context, id string) (*model.DepositRequest, error)
	Update(ctx context.Context, deposit model.DepositRequest) error
	SelectByUser(ctx context.Context, userID string) ([]model.DepositRequest, error)
	SelectByStatus(ctx context.Context, status model.Status, limit int) ([]model.DepositRequest, error)
}

// PoolAllocator mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_pool_allocator.go -package=mock github.com/msmkdenis/yap-poolledger/internal/deposit/service PoolAllocator
type PoolAllocator interface {
	GetPoolHealth(ctx context.Context) (*pool.HealthReport, error)
	AllocateToUser(ctx context.Context, userID string, amount decimal.Decimal) (*balance.Balance, error)
}

// LedgerWriter mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_ledger_writer.go -package=mock github.com/msmkdenis/yap-poolledger/internal/deposit/service LedgerWriter
type LedgerWriter interface {
	Open(ctx context.Context, entry ledger.Entry) (*ledger.Entry, error)
	Complete(ctx context.Context, entryID string, metadata map[string]any) error
	Fail(ctx context.Context, entryID string, reason string) error
	Cancel(ctx context.Context, entryID string, reason string) error
}

type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type DepositUseCase struct {
	repository DepositRepository
	pool       PoolAllocator
	ledger     LedgerWriter
	trManager  TransactionManager
	logger     *zap.Logger
	now        func() time.Time
}

func NewDepositService(
	repository DepositRepository,
	pool PoolAllocator,
	ledger LedgerWriter,
	trManager TransactionManager,
	logger *zap.Logger,
) *DepositUseCase {
	return &DepositUseCase{
		repository: repository,
		pool:       pool,
		ledger:     ledger,
		trManager:  trManager,
		logger:     logger,
		now:        time.Now,
	}
}

// Create files a deposit request with a PENDING ledger entry. Requests are
// refused while the pool is critical.
func (d *DepositUseCase) Create(ctx context.Context, userID string, amount decimal.Decimal) (*model.DepositRequest, error) {
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	health, err := d.pool.GetPoolHealth(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	if health.Status == pool.HealthCritical {
		d.logger.Warn("Deposit refused, pool is critical",
			zap.String("user_id", userID), zap.Stringer("spendable", health.Spendable))
		return nil, apperrors.ErrPoolUnavailable
	}

	deposit := &model.DepositRequest{
		ID:     uuid.New().String(),
		UserID: userID,
		Amount: amount,
		Status: model.StatusPending,
	}

	err = d.trManager.Do(ctx, func(ctx context.Context) error {
		entry, err := d.ledger.Open(ctx, ledger.Entry{
			UserID:      userID,
			Type:        ledger.TypeDeposit,
			Amount:      amount,
			Description: "Deposit request",
			Reference:   deposit.ID,
		})
		if err != nil {
			return err
		}

		deposit.LedgerEntryID = entry.ID
		return d.repository.Insert(ctx, deposit)
	})
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	d.logger.Info("Deposit requested",
		zap.String("deposit_id", deposit.ID), zap.String("user_id", userID), zap.Stringer("amount", amount))

	return deposit, nil
}

// Approve allocates pool funds to the depositor. The request row, the pool
// row and the user row are locked in that order.
func (d *DepositUseCase) Approve(ctx context.Context, depositID string, adminID string) (*model.DepositRequest, error) {
	deposit, err := d.resolve(ctx, depositID, func(ctx context.Context, deposit *model.DepositRequest) error {
		if err := deposit.Approve(adminID, d.now()); err != nil {
			return err
		}

		if _, err := d.pool.AllocateToUser(ctx, deposit.UserID, deposit.Amount); err != nil {
			return err
		}

		return d.ledger.Complete(ctx, deposit.LedgerEntryID, map[string]any{"approved_by": adminID})
	})
	if err != nil {
		return nil, err
	}

	d.logger.Info("Deposit approved",
		zap.String("deposit_id", depositID), zap.String("admin_id", adminID), zap.Stringer("amount", deposit.Amount))

	return deposit, nil
}

func (d *DepositUseCase) Reject(ctx context.Context, depositID string, reason string) (*model.DepositRequest, error) {
	deposit, err := d.resolve(ctx, depositID, func(ctx context.Context, deposit *model.DepositRequest) error {
		if err := deposit.Reject(reason, d.now()); err != nil {
			return err
		}

		return d.ledger.Cancel(ctx, deposit.LedgerEntryID, reason)
	})
	if err != nil {
		return nil, err
	}

	d.logger.Info("Deposit rejected", zap.String("deposit_id", depositID), zap.String("reason", reason))

	return deposit, nil
}

// Cancel withdraws a request on behalf of its owner.
func (d *DepositUseCase) Cancel(ctx context.Context, depositID string, userID string) (*model.DepositRequest, error) {
	deposit, err := d.resolve(ctx, depositID, func(ctx context.Context, deposit *model.DepositRequest) error {
		if err := deposit.Cancel(userID, d.now()); err != nil {
			return err
		}

		return d.ledger.Cancel(ctx, deposit.LedgerEntryID, cancelledByUser)
	})
	if err != nil {
		return nil, err
	}

	d.logger.Info("Deposit cancelled", zap.String("deposit_id", depositID), zap.String("user_id", userID))

	return deposit, nil
}

func (d *DepositUseCase) ListByUser(ctx context.Context, userID string) ([]model.DepositRequest, error) {
	deposits, err := d.repository.SelectByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return deposits, nil
}

func (d *DepositUseCase) ListPending(ctx context.Context) ([]model.DepositRequest, error) {
	deposits, err := d.repository.SelectByStatus(ctx, model.StatusPending, pendingPageSize)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return deposits, nil
}

func (d *DepositUseCase) resolve(
	ctx context.Context,
	depositID string,
	transition func(ctx context.Context, deposit *model.DepositRequest) error,
) (*model.DepositRequest, error) {
	var resolved *model.DepositRequest
	err := d.trManager.Do(ctx, func(ctx context.Context) error {
		deposit, err := d.repository.SelectByIDForUpdate(ctx, depositID)
		if err != nil {
			return err
		}

		if err = transition(ctx, deposit); err != nil {
			return err
		}

		if err = d.repository.Update(ctx, *deposit); err != nil {
			return err
		}

		resolved = deposit
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return resolved, nil
}
