package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/alert"
	balance "github.com/msmkdenis/yap-poolledger/internal/balance/model"
	"github.com/msmkdenis/yap-poolledger/internal/config"
	"github.com/msmkdenis/yap-poolledger/internal/gateway"
	"github.com/msmkdenis/yap-poolledger/internal/metrics"
	"github.com/msmkdenis/yap-poolledger/internal/pool/model"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

const alertSource = "pool"

// PoolRepository mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_pool_repository.go -package=mock github.com/msmkdenis/yap-poolledger/internal/pool/service PoolRepository
type PoolRepository interface {
	Insert(ctx context.Context, pool model.PoolAccount) (bool, error)
	Select(ctx context.Context) (*model.PoolAccount, error)
	SelectForUpdate(ctx context.Context) (*model.PoolAccount, error)
	Update(ctx context.Context, pool *model.PoolAccount) error
}

// BalanceCreditor mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_balance_creditor.go -package=mock github.com/msmkdenis/yap-poolledger/internal/pool/service BalanceCreditor
type BalanceCreditor interface {
	CreditAvailable(ctx context.Context, userID string, amount decimal.Decimal) (*balance.Balance, error)
}

// WalletReader mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_wallet_reader.go -package=mock github.com/msmkdenis/yap-poolledger/internal/pool/service WalletReader
type WalletReader interface {
	GetWalletBalance(ctx context.Context) (*gateway.WalletBalance, error)
}

type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// PoolUseCase owns every transfer across the pool boundary. The pool row
// is locked before any user row.
type PoolUseCase struct {
	repository       PoolRepository
	balances         BalanceCreditor
	wallet           WalletReader
	trManager        TransactionManager
	alerter          alert.Alerter
	metrics          *metrics.Metrics
	logger           *zap.Logger
	gatewayAccountID string
	thresholds       model.HealthThresholds
	tolerance        model.Tolerance
	now              func() time.Time
}

func NewPoolService(
	repository PoolRepository,
	balances BalanceCreditor,
	wallet WalletReader,
	trManager TransactionManager,
	alerter alert.Alerter,
	metrics *metrics.Metrics,
	cfg config.PoolConfig,
	gatewayAccountID string,
	logger *zap.Logger,
) *PoolUseCase {
	return &PoolUseCase{
		repository:       repository,
		balances:         balances,
		wallet:           wallet,
		trManager:        trManager,
		alerter:          alerter,
		metrics:          metrics,
		logger:           logger,
		gatewayAccountID: gatewayAccountID,
		thresholds: model.HealthThresholds{
			WarningFloor:  cfg.WarningFloor,
			CriticalFloor: cfg.CriticalFloor,
		},
		tolerance: model.Tolerance{
			Absolute: cfg.SyncToleranceAbs,
			Ratio:    cfg.SyncToleranceRatio,
		},
		now: time.Now,
	}
}

// Bootstrap creates the pool row on first start. It is a no-op afterwards.
func (p *PoolUseCase) Bootstrap(ctx context.Context) error {
	created, err := p.repository.Insert(ctx, model.NewPoolAccount(p.gatewayAccountID))
	if err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	if created {
		p.logger.Info("Pool account created", zap.String("gateway_account_id", p.gatewayAccountID))
	}

	return nil
}

func (p *PoolUseCase) CheckAvailableFunds(ctx context.Context, amount decimal.Decimal) (bool, error) {
	pool, err := p.GetPoolStatus(ctx)
	if err != nil {
		return false, err
	}

	return pool.HasUnallocated(amount), nil
}

// AllocateToUser moves amount from unallocated pool funds to the user's
// available balance. Both rows change in one transaction or neither does.
func (p *PoolUseCase) AllocateToUser(ctx context.Context, userID string, amount decimal.Decimal) (*balance.Balance, error) {
	var credited *balance.Balance
	pool, err := p.mutate(ctx, func(ctx context.Context, pool *model.PoolAccount) error {
		if err := pool.Allocate(amount); err != nil {
			return err
		}

		var err error
		credited, err = p.balances.CreditAvailable(ctx, userID, amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("Funds allocated to user",
		zap.String("user_id", userID), zap.Stringer("amount", amount), zap.Stringer("unallocated", pool.Unallocated))

	return credited, nil
}

// DeallocateFromUser shrinks the allocated figure after funds left a user
// balance through a completed payout.
func (p *PoolUseCase) DeallocateFromUser(ctx context.Context, userID string, amount decimal.Decimal) error {
	pool, err := p.mutate(ctx, func(_ context.Context, pool *model.PoolAccount) error {
		return pool.Deallocate(amount)
	})
	if err != nil {
		return err
	}

	p.logger.Info("Funds deallocated from user",
		zap.String("user_id", userID), zap.Stringer("amount", amount),
		zap.Stringer("allocated", pool.Allocated), zap.Stringer("unsettled", pool.Unsettled))

	return nil
}

func (p *PoolUseCase) GetPoolStatus(ctx context.Context) (*model.PoolAccount, error) {
	pool, err := p.repository.Select(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return pool, nil
}

func (p *PoolUseCase) GetPoolHealth(ctx context.Context) (*model.HealthReport, error) {
	pool, err := p.GetPoolStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &model.HealthReport{
		Status:        pool.Health(p.thresholds),
		Unallocated:   pool.Unallocated,
		Unsettled:     pool.Unsettled,
		Spendable:     pool.Spendable(),
		WarningFloor:  p.thresholds.WarningFloor,
		CriticalFloor: p.thresholds.CriticalFloor,
		LastSyncedAt:  pool.LastSyncedAt,
	}, nil
}

// ReconcileWithGateway adopts gatewayBalance as the pool total. A jump
// beyond tolerance is still applied but raised as a critical alert.
func (p *PoolUseCase) ReconcileWithGateway(ctx context.Context, gatewayBalance decimal.Decimal) (*model.SyncResult, error) {
	var result model.SyncResult
	pool, err := p.mutate(ctx, func(_ context.Context, pool *model.PoolAccount) error {
		result = pool.Sync(gatewayBalance, p.tolerance, p.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields := []zap.Field{
		zap.Stringer("previous", result.Previous),
		zap.Stringer("settled", result.Settled),
		zap.Stringer("current", result.Current),
		zap.Stringer("delta", result.Delta),
		zap.Stringer("allowed", result.Allowed),
	}

	if !result.WithinTolerance {
		p.metrics.PoolSyncOutOfTolerance()
		p.logger.Warn("Pool balance jump beyond tolerance", fields...)
		p.raise(ctx, alert.SeverityCritical, "Pool balance changed beyond tolerance", map[string]any{
			"previous": result.Previous.String(),
			"settled":  result.Settled.String(),
			"current":  result.Current.String(),
			"delta":    result.Delta.String(),
			"allowed":  result.Allowed.String(),
		})
	} else {
		p.logger.Info("Pool synced with gateway", fields...)
	}

	if pool.Unallocated.IsNegative() {
		p.raise(ctx, alert.SeverityCritical, "Pool allocations exceed gateway balance", map[string]any{
			"total":       pool.Total.String(),
			"allocated":   pool.Allocated.String(),
			"reserved":    pool.Reserved.String(),
			"unallocated": pool.Unallocated.String(),
		})
	}

	return &result, nil
}

// SyncFromGateway reads the wallet and reconciles the pool against its
// available figure.
func (p *PoolUseCase) SyncFromGateway(ctx context.Context) (*model.SyncResult, error) {
	wallet, err := p.wallet.GetWalletBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return p.ReconcileWithGateway(ctx, wallet.Available)
}

func (p *PoolUseCase) mutate(ctx context.Context, change func(ctx context.Context, pool *model.PoolAccount) error) (*model.PoolAccount, error) {
	var updated *model.PoolAccount
	err := p.trManager.Do(ctx, func(ctx context.Context) error {
		pool, err := p.repository.SelectForUpdate(ctx)
		if err != nil {
			return err
		}

		if err = change(ctx, pool); err != nil {
			return err
		}

		if err = p.repository.Update(ctx, pool); err != nil {
			return err
		}

		updated = pool
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	p.metrics.PoolFigures(updated.Total, updated.Allocated, updated.Reserved, updated.Unallocated, updated.Unsettled)

	return updated, nil
}

func (p *PoolUseCase) raise(ctx context.Context, severity alert.Severity, summary string, details map[string]any) {
	err := p.alerter.Raise(ctx, alert.Alert{
		Source:   alertSource,
		Severity: severity,
		Summary:  summary,
		Details:  details,
		RaisedAt: p.now(),
	})
	if err != nil {
		p.logger.Error("Unable to raise alert", zap.String("summary", summary), zap.Error(err))
	}
}
