package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/gateway"
	ledger "github.com/msmkdenis/yap-poolledger/internal/ledger/model"
	"github.com/msmkdenis/yap-poolledger/internal/metrics"
	"github.com/msmkdenis/yap-poolledger/internal/payout/model"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

const (
	pendingPageSize       = 100
	cancelledByUser       = "cancelled by user"
	gatewayRejectedReason = "gateway rejected payout"
	resolvedFailedReason  = "gateway confirmed payout failed"
	outcomeResource       = "payout outcome"
)

// PayoutRepository mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_payout_repository.go -package=mock github.com/msmkdenis/yap-poolledger/internal/payout/service PayoutRepository
type PayoutRepository interface {
	Insert(ctx context.Context, payout *model.PayoutRequest) error
	SelectByID(ctx context.Context, id string) (*model.PayoutRequest, error)
	SelectByIDForUpdate(ctx context.Context, id string) (*model.PayoutRequest, error)
	Update(ctx context.Context, payout model.PayoutRequest) error
	SelectByUser(ctx context.Context, userID string) ([]model.PayoutRequest, error)
	SelectByStatus(ctx context.Context, status model.Status, limit int) ([]model.PayoutRequest, error)
}

// FundsReserver mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_funds_reserver.go -package=mock github.com/msmkdenis/yap-poolledger/internal/payout/service FundsReserver
type FundsReserver interface {
	ReserveFunds(ctx context.Context, userID string, amount decimal.Decimal) error
	CompleteReservedTransaction(ctx context.Context, userID string, amount decimal.Decimal) error
	ReleaseReservedFunds(ctx context.Context, userID string, amount decimal.Decimal) error
	RecordWithdrawal(ctx context.Context, userID string, amount decimal.Decimal) error
}

// PoolDeallocator mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_pool_deallocator.go -package=mock github.com/msmkdenis/yap-poolledger/internal/payout/service PoolDeallocator
type PoolDeallocator interface {
	DeallocateFromUser(ctx context.Context, userID string, amount decimal.Decimal) error
}

type LedgerWriter interface {
	Open(ctx context.Context, entry ledger.Entry) (*ledger.Entry, error)
	Complete(ctx context.Context, entryID string, metadata map[string]any) error
	Fail(ctx context.Context, entryID string, reason string) error
	Cancel(ctx context.Context, entryID string, reason string) error
}

// PayoutGateway mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_payout_gateway.go -package=mock github.com/msmkdenis/yap-poolledger/internal/payout/service PayoutGateway
type PayoutGateway interface {
	Payout(ctx context.Context, payout gateway.PayoutRequest) (*gateway.PayoutResult, error)
}

type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type PayoutUseCase struct {
	repository PayoutRepository
	balances   FundsReserver
	pool       PoolDeallocator
	ledger     LedgerWriter
	gateway    PayoutGateway
	trManager  TransactionManager
	metrics    *metrics.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

func NewPayoutService(
	repository PayoutRepository,
	balances FundsReserver,
	pool PoolDeallocator,
	ledger LedgerWriter,
	gateway PayoutGateway,
	trManager TransactionManager,
	metrics *metrics.Metrics,
	logger *zap.Logger,
) *PayoutUseCase {
	return &PayoutUseCase{
		repository: repository,
		balances:   balances,
		pool:       pool,
		ledger:     ledger,
		gateway:    gateway,
		trManager:  trManager,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// Create reserves the payout amount, opens a PENDING ledger entry and files
// the request, all in one transaction.
func (p *PayoutUseCase) Create(ctx context.Context, userID string, amount decimal.Decimal) (*model.PayoutRequest, error) {
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	payout := &model.PayoutRequest{
		ID:     uuid.New().String(),
		UserID: userID,
		Amount: amount,
		Status: model.StatusPending,
	}

	err := p.trManager.Do(ctx, func(ctx context.Context) error {
		if err := p.balances.ReserveFunds(ctx, userID, amount); err != nil {
			return err
		}

		entry, err := p.ledger.Open(ctx, ledger.Entry{
			UserID:      userID,
			Type:        ledger.TypePayout,
			Amount:      amount,
			Description: "Payout request",
			Reference:   payout.ID,
		})
		if err != nil {
			return err
		}

		payout.LedgerEntryID = entry.ID
		return p.repository.Insert(ctx, payout)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) {
			p.metrics.Reservation(metrics.ReservationRejected)
		}
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	p.metrics.Reservation(metrics.ReservationReserved)
	p.logger.Info("Payout requested",
		zap.String("payout_id", payout.ID), zap.String("user_id", userID), zap.Stringer("amount", amount))

	return payout, nil
}

// Process pays a PENDING request out through the gateway. The PROCESSING
// status is committed before the gateway call, which runs outside any
// database transaction. A gateway failure is a normal outcome: the request
// ends FAILED and its funds are released.
func (p *PayoutUseCase) Process(ctx context.Context, payoutID string, processedBy string) (*model.PayoutRequest, error) {
	payout, err := p.transition(ctx, payoutID, func(_ context.Context, payout *model.PayoutRequest) error {
		return payout.StartProcessing(processedBy, p.now())
	})
	if err != nil {
		return nil, err
	}

	result, errGateway := p.gateway.Payout(ctx, gateway.PayoutRequest{
		Reference: payout.ID,
		UserID:    payout.UserID,
		Amount:    payout.Amount,
	})
	if errGateway != nil {
		return p.failProcessing(ctx, payoutID, errGateway)
	}

	// The money has left the wallet, so recording it must outlive the caller.
	payout, err = p.settle(context.WithoutCancel(ctx), payoutID, result.Reference)
	if err != nil {
		p.logger.Error("Payout sent but not recorded, left in PROCESSING",
			zap.String("payout_id", payoutID), zap.String("gateway_reference", result.Reference), zap.Error(err))
		return nil, err
	}

	p.metrics.Payout(string(model.StatusCompleted))
	p.logger.Info("Payout completed",
		zap.String("payout_id", payoutID), zap.String("gateway_reference", result.Reference), zap.Stringer("amount", payout.Amount))

	return payout, nil
}

func (p *PayoutUseCase) failProcessing(ctx context.Context, payoutID string, errGateway error) (*model.PayoutRequest, error) {
	reason := gatewayRejectedReason
	if errors.Is(errGateway, apperrors.ErrServiceUnavailable) {
		reason = apperrors.ErrServiceUnavailable.Error()
	}

	p.logger.Warn("Gateway payout failed, releasing funds", zap.String("payout_id", payoutID), zap.Error(errGateway))

	payout, err := p.release(context.WithoutCancel(ctx), payoutID, reason)
	if err != nil {
		p.logger.Error("Unable to release failed payout", zap.String("payout_id", payoutID), zap.Error(err))
		return nil, errors.Join(err, errGateway)
	}

	p.metrics.Payout(string(model.StatusFailed))

	return payout, nil
}

// Resolve closes a request left in PROCESSING once its gateway outcome is
// known: completed requests are recorded as paid, failed ones release their
// funds.
func (p *PayoutUseCase) Resolve(
	ctx context.Context,
	payoutID string,
	outcome model.Outcome,
	gatewayReference string,
	reason string,
	resolvedBy string,
) (*model.PayoutRequest, error) {
	var (
		payout *model.PayoutRequest
		err    error
	)

	switch outcome {
	case model.OutcomeCompleted:
		if gatewayReference == "" {
			return nil, apperrors.ErrGatewayReferenceRequired
		}
		payout, err = p.settle(ctx, payoutID, gatewayReference)
		if err != nil {
			return nil, err
		}
		p.metrics.Payout(string(model.StatusCompleted))
	case model.OutcomeFailed:
		if reason == "" {
			reason = resolvedFailedReason
		}
		payout, err = p.release(ctx, payoutID, reason)
		if err != nil {
			return nil, err
		}
		p.metrics.Payout(string(model.StatusFailed))
	default:
		return nil, apperrors.NewInvalidStateError(outcomeResource, string(outcome), "accept")
	}

	p.logger.Info("Processing payout resolved",
		zap.String("payout_id", payoutID), zap.String("outcome", string(outcome)),
		zap.String("gateway_reference", gatewayReference), zap.String("resolved_by", resolvedBy))

	return payout, nil
}

// settle records a payout the gateway has paid.
func (p *PayoutUseCase) settle(ctx context.Context, payoutID string, gatewayReference string) (*model.PayoutRequest, error) {
	payout, err := p.transition(ctx, payoutID, func(ctx context.Context, payout *model.PayoutRequest) error {
		if err := payout.Complete(gatewayReference, p.now()); err != nil {
			return err
		}
		if err := p.pool.DeallocateFromUser(ctx, payout.UserID, payout.Amount); err != nil {
			return err
		}
		if err := p.balances.CompleteReservedTransaction(ctx, payout.UserID, payout.Amount); err != nil {
			return err
		}
		if err := p.balances.RecordWithdrawal(ctx, payout.UserID, payout.Amount); err != nil {
			return err
		}
		return p.ledger.Complete(ctx, payout.LedgerEntryID, map[string]any{"gateway_reference": gatewayReference})
	})
	if err != nil {
		return nil, err
	}

	p.metrics.Reservation(metrics.ReservationCommitted)
	return payout, nil
}

// release fails a PROCESSING payout and returns its funds to the user.
func (p *PayoutUseCase) release(ctx context.Context, payoutID string, reason string) (*model.PayoutRequest, error) {
	payout, err := p.transition(ctx, payoutID, func(ctx context.Context, payout *model.PayoutRequest) error {
		if err := payout.Fail(reason, p.now()); err != nil {
			return err
		}
		if err := p.balances.ReleaseReservedFunds(ctx, payout.UserID, payout.Amount); err != nil {
			return err
		}
		return p.ledger.Fail(ctx, payout.LedgerEntryID, reason)
	})
	if err != nil {
		return nil, err
	}

	p.metrics.Reservation(metrics.ReservationReleased)
	return payout, nil
}

func (p *PayoutUseCase) Reject(ctx context.Context, payoutID string, reason string) (*model.PayoutRequest, error) {
	payout, err := p.transition(ctx, payoutID, func(ctx context.Context, payout *model.PayoutRequest) error {
		if err := payout.Reject(reason, p.now()); err != nil {
			return err
		}
		if err := p.balances.ReleaseReservedFunds(ctx, payout.UserID, payout.Amount); err != nil {
			return err
		}
		return p.ledger.Fail(ctx, payout.LedgerEntryID, reason)
	})
	if err != nil {
		return nil, err
	}

	p.metrics.Reservation(metrics.ReservationReleased)
	p.metrics.Payout("REJECTED")
	p.logger.Info("Payout rejected", zap.String("payout_id", payoutID), zap.String("reason", reason))

	return payout, nil
}

func (p *PayoutUseCase) Cancel(ctx context.Context, payoutID string, userID string) (*model.PayoutRequest, error) {
	payout, err := p.transition(ctx, payoutID, func(ctx context.Context, payout *model.PayoutRequest) error {
		if err := payout.Cancel(userID, p.now()); err != nil {
			return err
		}
		if err := p.balances.ReleaseReservedFunds(ctx, payout.UserID, payout.Amount); err != nil {
			return err
		}
		return p.ledger.Cancel(ctx, payout.LedgerEntryID, cancelledByUser)
	})
	if err != nil {
		return nil, err
	}

	p.metrics.Reservation(metrics.ReservationReleased)
	p.metrics.Payout(string(model.StatusCancelled))
	p.logger.Info("Payout cancelled", zap.String("payout_id", payoutID), zap.String("user_id", userID))

	return payout, nil
}

func (p *PayoutUseCase) ListByUser(ctx context.Context, userID string) ([]model.PayoutRequest, error) {
	payouts, err := p.repository.SelectByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return payouts, nil
}

func (p *PayoutUseCase) ListPending(ctx context.Context, limit int) ([]model.PayoutRequest, error) {
	if limit <= 0 {
		limit = pendingPageSize
	}

	payouts, err := p.repository.SelectByStatus(ctx, model.StatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return payouts, nil
}

// transition locks the request row and applies change in one transaction.
// The request row is always locked before the pool and user rows.
func (p *PayoutUseCase) transition(
	ctx context.Context,
	payoutID string,
	change func(ctx context.Context, payout *model.PayoutRequest) error,
) (*model.PayoutRequest, error) {
	var updated *model.PayoutRequest
	err := p.trManager.Do(ctx, func(ctx context.Context) error {
		payout, err := p.repository.SelectByIDForUpdate(ctx, payoutID)
		if err != nil {
			return err
		}

		if err = change(ctx, payout); err != nil {
			return err
		}

		if err = p.repository.Update(ctx, *payout); err != nil {
			return err
		}

		updated = payout
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return updated, nil
}
