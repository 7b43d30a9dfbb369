package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/ledger/model"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

// LedgerRepository mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_ledger_repository.go -package=mock github.com/msmkdenis/yap-poolledger/internal/ledger/service LedgerRepository
type LedgerRepository interface {
	Insert(ctx context.Context, entry *model.Entry) error
	SelectByID(ctx context.Context, id string) (*model.Entry, error)
	Complete(ctx context.Context, id string, metadata map[string]any) error
	Fail(ctx context.Context, id string, status model.Status, reason string) error
	SelectCompletedTotalsByUser(ctx context.Context, userID string) ([]model.TypeTotal, error)
	SelectTotalsByUserSince(ctx context.Context, userID string, since time.Time) ([]model.TypeTotal, error)
	SelectByUser(ctx context.Context, userID string, limit int) ([]model.Entry, error)
	SelectStalePending(ctx context.Context, before time.Time, limit int) ([]model.Entry, error)
}

type LedgerUseCase struct {
	repository LedgerRepository
	logger     *zap.Logger
	now        func() time.Time
}

func NewLedgerService(repository LedgerRepository, logger *zap.Logger) *LedgerUseCase {
	return &LedgerUseCase{
		repository: repository,
		logger:     logger,
		now:        time.Now,
	}
}

// Open records an attempted money movement as PENDING. The caller resolves it
// with Complete, Fail or Cancel.
func (l *LedgerUseCase) Open(ctx context.Context, entry model.Entry) (*model.Entry, error) {
	return l.insert(ctx, entry, model.StatusPending)
}

// Record stores a movement that already happened.
func (l *LedgerUseCase) Record(ctx context.Context, entry model.Entry) (*model.Entry, error) {
	return l.insert(ctx, entry, model.StatusCompleted)
}

func (l *LedgerUseCase) insert(ctx context.Context, entry model.Entry, status model.Status) (*model.Entry, error) {
	if !entry.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	entry.ID = uuid.New().String()
	entry.Status = status

	if err := l.repository.Insert(ctx, &entry); err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	l.logger.Debug("Ledger entry created",
		zap.String("entry_id", entry.ID),
		zap.String("user_id", entry.UserID),
		zap.String("type", string(entry.Type)),
		zap.String("status", string(entry.Status)),
		zap.Stringer("amount", entry.Amount))

	return &entry, nil
}

func (l *LedgerUseCase) Complete(ctx context.Context, entryID string, metadata map[string]any) error {
	if err := l.repository.Complete(ctx, entryID, metadata); err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return nil
}

func (l *LedgerUseCase) Fail(ctx context.Context, entryID string, reason string) error {
	if err := l.repository.Fail(ctx, entryID, model.StatusFailed, reason); err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return nil
}

func (l *LedgerUseCase) Cancel(ctx context.Context, entryID string, reason string) error {
	if err := l.repository.Fail(ctx, entryID, model.StatusCancelled, reason); err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return nil
}

func (l *LedgerUseCase) Get(ctx context.Context, entryID string) (*model.Entry, error) {
	entry, err := l.repository.SelectByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return entry, nil
}

func (l *LedgerUseCase) ListByUser(ctx context.Context, userID string, limit int) ([]model.Entry, error) {
	entries, err := l.repository.SelectByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return entries, nil
}

func (l *LedgerUseCase) CompletedTotals(ctx context.Context, userID string) ([]model.TypeTotal, error) {
	totals, err := l.repository.SelectCompletedTotalsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return totals, nil
}

func (l *LedgerUseCase) ActivitySince(ctx context.Context, userID string, since time.Time) ([]model.TypeTotal, error) {
	totals, err := l.repository.SelectTotalsByUserSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return totals, nil
}

// StalePending returns entries still PENDING after olderThan: purchase
// reservations nobody resolved and payouts left in PROCESSING.
func (l *LedgerUseCase) StalePending(ctx context.Context, olderThan time.Duration, limit int) ([]model.Entry, error) {
	entries, err := l.repository.SelectStalePending(ctx, l.now().Add(-olderThan), limit)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return entries, nil
}
