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
	balance "github.com/msmkdenis/yap-poolledger/internal/balance/service"
	"github.com/msmkdenis/yap-poolledger/internal/gateway"
	ledger "github.com/msmkdenis/yap-poolledger/internal/ledger/model"
	"github.com/msmkdenis/yap-poolledger/internal/purchase/model"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

type Reserver interface {
	WithReservation(
		ctx context.Context,
		userID string,
		amount decimal.Decimal,
		hooks balance.ReservationHooks,
		fn func(ctx context.Context) error,
	) error
}

type PoolDeallocator interface {
	DeallocateFromUser(ctx context.Context, userID string, amount decimal.Decimal) error
}

type LedgerWriter interface {
	Open(ctx context.Context, entry ledger.Entry) (*ledger.Entry, error)
	Complete(ctx context.Context, entryID string, metadata map[string]any) error
	Fail(ctx context.Context, entryID string, reason string) error
}

// Executor mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_executor.go -package=mock github.com/msmkdenis/yap-poolledger/internal/purchase/service Executor
type Executor interface {
	Purchase(ctx context.Context, purchase gateway.PurchaseRequest) (*gateway.PurchaseResult, error)
}

type PurchaseUseCase struct {
	balances Reserver
	pool     PoolDeallocator
	ledger   LedgerWriter
	executor Executor
	logger   *zap.Logger
	now      func() time.Time
}

func NewPurchaseService(
	balances Reserver,
	pool PoolDeallocator,
	ledger LedgerWriter,
	executor Executor,
	logger *zap.Logger,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		balances: balances,
		pool:     pool,
		ledger:   ledger,
		executor: executor,
		logger:   logger,
		now:      time.Now,
	}
}

// Purchase holds the order amount in reserve while the provider fulfils it.
// The SALE entry is opened with the reservation and resolved with it. A
// fulfilled order leaves the pool, so commit also deallocates it.
func (p *PurchaseUseCase) Purchase(ctx context.Context, order model.Order) (*model.Receipt, error) {
	if !order.Product.Valid() {
		return nil, apperrors.ErrUnknownProduct
	}
	if !order.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if order.Reference == "" {
		order.Reference = uuid.New().String()
	}

	var (
		entryID    string
		result     *gateway.PurchaseResult
		errExecute error
	)

	hooks := balance.ReservationHooks{
		OnReserve: func(ctx context.Context) error {
			entry, err := p.ledger.Open(ctx, ledger.Entry{
				UserID:      order.UserID,
				Type:        ledger.TypeSale,
				Amount:      order.Amount,
				Description: fmt.Sprintf("%s for %s", order.Product, order.Recipient),
				Reference:   order.Reference,
			})
			if err != nil {
				return err
			}
			entryID = entry.ID
			return nil
		},
		OnCommit: func(ctx context.Context) error {
			if err := p.pool.DeallocateFromUser(ctx, order.UserID, order.Amount); err != nil {
				return err
			}
			return p.ledger.Complete(ctx, entryID, providerMetadata(result))
		},
		OnRelease: func(ctx context.Context, cause error) error {
			return p.ledger.Fail(ctx, entryID, failureReason(cause))
		},
	}

	err := p.balances.WithReservation(ctx, order.UserID, order.Amount, hooks, func(ctx context.Context) error {
		result, errExecute = p.executor.Purchase(ctx, gateway.PurchaseRequest{
			Product:   string(order.Product),
			Recipient: order.Recipient,
			Amount:    order.Amount,
			Reference: order.Reference,
		})
		return errExecute
	})
	if err != nil {
		if errExecute != nil {
			p.logger.Warn("Purchase executor failed, funds released",
				zap.String("reference", order.Reference), zap.String("product", string(order.Product)), zap.Error(err))
			return nil, fmt.Errorf("%s %w", utils.Caller(), apperrors.ErrServiceUnavailable)
		}
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	p.logger.Info("Purchase completed",
		zap.String("reference", order.Reference), zap.String("user_id", order.UserID),
		zap.String("product", string(order.Product)), zap.Stringer("amount", order.Amount))

	return &model.Receipt{
		Reference:         order.Reference,
		LedgerEntryID:     entryID,
		Product:           order.Product,
		Amount:            order.Amount,
		Recipient:         order.Recipient,
		Provider:          result.Provider,
		ProviderReference: result.Reference,
		Token:             result.Token,
		CompletedAt:       p.now(),
	}, nil
}

func providerMetadata(result *gateway.PurchaseResult) map[string]any {
	metadata := map[string]any{
		"provider":           result.Provider,
		"provider_reference": result.Reference,
	}
	if result.Token != "" {
		metadata["token"] = result.Token
	}
	for key, value := range result.Details {
		metadata[key] = value
	}
	return metadata
}

func failureReason(cause error) string {
	if errors.Is(cause, apperrors.ErrServiceUnavailable) {
		return "provider unavailable"
	}
	return cause.Error()
}
