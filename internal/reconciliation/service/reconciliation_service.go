package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/alert"
	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	balance "github.com/msmkdenis/yap-poolledger/internal/balance/model"
	"github.com/msmkdenis/yap-poolledger/internal/config"
	"github.com/msmkdenis/yap-poolledger/internal/gateway"
	ledger "github.com/msmkdenis/yap-poolledger/internal/ledger/model"
	"github.com/msmkdenis/yap-poolledger/internal/metrics"
	pool "github.com/msmkdenis/yap-poolledger/internal/pool/model"
	"github.com/msmkdenis/yap-poolledger/internal/reconciliation/model"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

const (
	alertSource = "reconciliation"
	stuckLimit  = 100
)

// BalanceReader mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_balance_reader.go -package=mock github.com/msmkdenis/yap-poolledger/internal/reconciliation/service BalanceReader
type BalanceReader interface {
	GetBalance(ctx context.Context, userID string) (*balance.Balance, error)
}

// BalanceDirectory mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_balance_directory.go -package=mock github.com/msmkdenis/yap-poolledger/internal/reconciliation/service BalanceDirectory
type BalanceDirectory interface {
	SelectTotal(ctx context.Context) (decimal.Decimal, int64, error)
	SelectUserIDs(ctx context.Context) ([]string, error)
	SelectRandomUserIDs(ctx context.Context, limit int) ([]string, error)
}

// LedgerTotals mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_ledger_totals.go -package=mock github.com/msmkdenis/yap-poolledger/internal/reconciliation/service LedgerTotals
type LedgerTotals interface {
	CompletedTotals(ctx context.Context, userID string) ([]ledger.TypeTotal, error)
	StalePending(ctx context.Context, olderThan time.Duration, limit int) ([]ledger.Entry, error)
}

// PoolReader mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_pool_reader.go -package=mock github.com/msmkdenis/yap-poolledger/internal/reconciliation/service PoolReader
type PoolReader interface {
	GetPoolStatus(ctx context.Context) (*pool.PoolAccount, error)
}

type WalletReader interface {
	GetWalletBalance(ctx context.Context) (*gateway.WalletBalance, error)
}

// ReconciliationUseCase compares the three balance views and reports drift.
// It never writes to any of them.
type ReconciliationUseCase struct {
	balances   BalanceReader
	directory  BalanceDirectory
	ledger     LedgerTotals
	pool       PoolReader
	wallet     WalletReader
	alerter    alert.Alerter
	metrics    *metrics.Metrics
	thresholds model.Thresholds
	cfg        config.ReconciliationConfig
	limiter    ratelimit.Limiter
	running    atomic.Bool
	logger     *zap.Logger
	now        func() time.Time
}

func NewReconciliationService(
	balances BalanceReader,
	directory BalanceDirectory,
	ledger LedgerTotals,
	pool PoolReader,
	wallet WalletReader,
	alerter alert.Alerter,
	metrics *metrics.Metrics,
	cfg config.ReconciliationConfig,
	logger *zap.Logger,
) *ReconciliationUseCase {
	itemsPerSecond := cfg.ItemsPerSecond
	if itemsPerSecond <= 0 {
		itemsPerSecond = 1
	}

	return &ReconciliationUseCase{
		balances:  balances,
		directory: directory,
		ledger:    ledger,
		pool:      pool,
		wallet:    wallet,
		alerter:   alerter,
		metrics:   metrics,
		thresholds: model.Thresholds{
			Epsilon:        cfg.Epsilon,
			CriticalAmount: cfg.CriticalAmount,
			CriticalRatio:  cfg.CriticalRatio,
		},
		cfg:     cfg,
		limiter: ratelimit.New(itemsPerSecond),
		logger:  logger,
		now:     time.Now,
	}
}

// ReconcileBalance rebuilds the user's balance from completed ledger entries
// and compares it with available plus reserved.
func (r *ReconciliationUseCase) ReconcileBalance(ctx context.Context, userID string) (*model.BalanceCheck, error) {
	current, err := r.balances.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	totals, err := r.ledger.CompletedTotals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	implied := ledger.ImpliedBalance(totals)
	difference := current.Available.Add(current.Reserved).Sub(implied)

	return &model.BalanceCheck{
		UserID:       userID,
		Implied:      implied,
		Available:    current.Available,
		Reserved:     current.Reserved,
		Difference:   difference,
		IsReconciled: difference.Abs().LessThan(r.thresholds.Epsilon),
		Severity:     r.thresholds.Classify(implied, difference),
	}, nil
}

// ReconcilePool compares the pool's allocated figure with what all users own.
func (r *ReconciliationUseCase) ReconcilePool(ctx context.Context) (*model.Discrepancy, error) {
	account, err := r.pool.GetPoolStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	owned, _, err := r.directory.SelectTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return r.compare(model.ScopePool, "allocated", owned, account.Allocated), nil
}

// ReconcileGateway compares the pool total, less outflow not yet seen by a
// sync, with the wallet's available figure.
func (r *ReconciliationUseCase) ReconcileGateway(ctx context.Context) (*model.Discrepancy, error) {
	account, err := r.pool.GetPoolStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	wallet, err := r.wallet.GetWalletBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return r.compare(model.ScopeGateway, account.GatewayAccountID, wallet.Available, account.Total.Sub(account.Unsettled)), nil
}

func (r *ReconciliationUseCase) DetectStuckReservations(ctx context.Context) ([]model.StuckReservation, error) {
	entries, err := r.ledger.StalePending(ctx, r.cfg.StaleReservationAfter, stuckLimit)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	now := r.now()
	stuck := make([]model.StuckReservation, 0, len(entries))
	for _, entry := range entries {
		stuck = append(stuck, model.StuckReservation{
			EntryID:   entry.ID,
			Type:      string(entry.Type),
			UserID:    entry.UserID,
			Amount:    entry.Amount,
			CreatedAt: entry.CreatedAt,
			Age:       now.Sub(entry.CreatedAt),
		})
	}

	return stuck, nil
}

// RunSampled checks a random bounded sample of users plus the pool, gateway
// and stuck reservation checks.
func (r *ReconciliationUseCase) RunSampled(ctx context.Context) (*model.Report, error) {
	return r.run(ctx, model.ModeSampled, func(ctx context.Context) ([]string, error) {
		return r.directory.SelectRandomUserIDs(ctx, r.cfg.SampleSize)
	})
}

// RunFull checks every user, one at a time at a bounded rate.
func (r *ReconciliationUseCase) RunFull(ctx context.Context) (*model.Report, error) {
	return r.run(ctx, model.ModeFull, r.directory.SelectUserIDs)
}

func (r *ReconciliationUseCase) Run(ctx context.Context, mode model.Mode) (*model.Report, error) {
	if mode == model.ModeFull {
		return r.RunFull(ctx)
	}
	return r.RunSampled(ctx)
}

func (r *ReconciliationUseCase) run(
	ctx context.Context,
	mode model.Mode,
	users func(ctx context.Context) ([]string, error),
) (*model.Report, error) {
	if !r.running.CompareAndSwap(false, true) {
		return nil, apperrors.ErrReconciliationAlreadyInProgress
	}
	defer r.running.Store(false)

	report := &model.Report{Mode: mode, StartedAt: r.now()}

	userIDs, err := users(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	for _, userID := range userIDs {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if mode == model.ModeFull {
			r.limiter.Take()
		}

		check, errCheck := r.ReconcileBalance(ctx, userID)
		if errCheck != nil {
			report.Errors = append(report.Errors, errCheck.Error())
			continue
		}
		report.UsersChecked++
		report.Add(check.Discrepancy())
	}

	if discrepancy, errPool := r.ReconcilePool(ctx); errPool != nil {
		report.Errors = append(report.Errors, errPool.Error())
	} else {
		report.Add(*discrepancy)
	}

	if discrepancy, errGateway := r.ReconcileGateway(ctx); errGateway != nil {
		report.Errors = append(report.Errors, errGateway.Error())
	} else {
		report.Add(*discrepancy)
	}

	if stuck, errStuck := r.DetectStuckReservations(ctx); errStuck != nil {
		report.Errors = append(report.Errors, errStuck.Error())
	} else {
		report.StuckReservations = stuck
	}

	report.FinishedAt = r.now()
	r.publish(ctx, report)

	return report, nil
}

func (r *ReconciliationUseCase) compare(scope model.Scope, subject string, expected, actual decimal.Decimal) *model.Discrepancy {
	difference := actual.Sub(expected)
	return &model.Discrepancy{
		Scope:      scope,
		Subject:    subject,
		Expected:   expected,
		Actual:     actual,
		Difference: difference,
		Severity:   r.thresholds.Classify(expected, difference),
	}
}

// publish logs every finding, counts it and escalates the critical ones.
func (r *ReconciliationUseCase) publish(ctx context.Context, report *model.Report) {
	for _, discrepancy := range report.Discrepancies {
		r.metrics.Discrepancy(string(discrepancy.Scope), string(discrepancy.Severity))

		fields := []zap.Field{
			zap.String("scope", string(discrepancy.Scope)),
			zap.String("subject", discrepancy.Subject),
			zap.Stringer("expected", discrepancy.Expected),
			zap.Stringer("actual", discrepancy.Actual),
			zap.Stringer("difference", discrepancy.Difference),
		}

		if discrepancy.Severity != model.SeverityCritical {
			r.logger.Warn("Reconciliation discrepancy", fields...)
			continue
		}

		r.logger.Error("Critical reconciliation discrepancy", fields...)
		r.raise(ctx, fmt.Sprintf("Critical %s discrepancy", discrepancy.Scope), map[string]any{
			"subject":    discrepancy.Subject,
			"expected":   discrepancy.Expected.String(),
			"actual":     discrepancy.Actual.String(),
			"difference": discrepancy.Difference.String(),
		})
	}

	if len(report.StuckReservations) > 0 {
		r.metrics.Discrepancy(string(model.ScopeReservation), string(model.SeverityCritical))

		entryIDs := make([]string, 0, len(report.StuckReservations))
		for _, stuck := range report.StuckReservations {
			entryIDs = append(entryIDs, stuck.EntryID)
		}
		r.logger.Error("Reservations left unresolved", zap.Strings("entry_ids", entryIDs))
		r.raise(ctx, "Reservations left unresolved", map[string]any{
			"count":     len(entryIDs),
			"entry_ids": entryIDs,
		})
	}

	r.logger.Info("Reconciliation finished",
		zap.String("mode", string(report.Mode)),
		zap.Int("users_checked", report.UsersChecked),
		zap.Int("discrepancies", len(report.Discrepancies)),
		zap.Int("stuck_reservations", len(report.StuckReservations)),
		zap.Int("errors", len(report.Errors)),
		zap.Duration("took", report.FinishedAt.Sub(report.StartedAt)))
}

func (r *ReconciliationUseCase) raise(ctx context.Context, summary string, details map[string]any) {
	err := r.alerter.Raise(ctx, alert.Alert{
		Source:   alertSource,
		Severity: alert.SeverityCritical,
		Summary:  summary,
		Details:  details,
		RaisedAt: r.now(),
	})
	if err != nil {
		r.logger.Error("Unable to raise alert", zap.String("summary", summary), zap.Error(err))
	}
}
