package service

import (
	"context"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/config"
	"github.com/msmkdenis/yap-poolledger/internal/payout/model"
)

type payoutProcessor interface {
	ListPending(ctx context.Context, limit int) ([]model.PayoutRequest, error)
	Process(ctx context.Context, payoutID string, processedBy string) (*model.PayoutRequest, error)
}

// Processor drains PENDING payouts one at a time, paced so a batch never
// bursts the gateway.
type Processor struct {
	payouts     payoutProcessor
	limiter     ratelimit.Limiter
	batchSize   int
	processedBy string
	logger      *zap.Logger
}

func NewProcessor(payouts payoutProcessor, cfg config.ScheduleConfig, logger *zap.Logger) *Processor {
	perSecond := cfg.PayoutPerSecond
	if perSecond <= 0 {
		perSecond = 1
	}

	return &Processor{
		payouts:     payouts,
		limiter:     ratelimit.New(perSecond),
		batchSize:   cfg.PayoutBatchSize,
		processedBy: cfg.PayoutProcessedBy,
		logger:      logger,
	}
}

// ProcessPending runs one bounded batch and reports how many payouts
// completed and how many failed.
func (p *Processor) ProcessPending(ctx context.Context) (completed int, failed int, err error) {
	pending, err := p.payouts.ListPending(ctx, p.batchSize)
	if err != nil {
		return 0, 0, err
	}

	for _, payout := range pending {
		if ctx.Err() != nil {
			return completed, failed, ctx.Err()
		}
		p.limiter.Take()

		processed, err := p.payouts.Process(ctx, payout.ID, p.processedBy)
		if err != nil {
			p.logger.Warn("Unable to process payout", zap.String("payout_id", payout.ID), zap.Error(err))
			failed++
			continue
		}

		if processed.Status == model.StatusCompleted {
			completed++
		} else {
			failed++
		}
	}

	if len(pending) > 0 {
		p.logger.Info("Payout batch processed",
			zap.Int("pending", len(pending)), zap.Int("completed", completed), zap.Int("failed", failed))
	}

	return completed, failed, nil
}

// Run adapts ProcessPending to the scheduler's job signature.
func (p *Processor) Run(ctx context.Context) error {
	_, _, err := p.ProcessPending(ctx)
	return err
}
