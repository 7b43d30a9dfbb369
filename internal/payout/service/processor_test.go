package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/config"
	"github.com/msmkdenis/yap-poolledger/internal/payout/model"
)

type stubPayouts struct {
	pending   []model.PayoutRequest
	outcomes  map[string]model.Status
	processed []string
	limit     int
	cancel    context.CancelFunc
}

func (s *stubPayouts) ListPending(_ context.Context, limit int) ([]model.PayoutRequest, error) {
	s.limit = limit
	return s.pending, nil
}

func (s *stubPayouts) Process(_ context.Context, payoutID string, _ string) (*model.PayoutRequest, error) {
	s.processed = append(s.processed, payoutID)
	if s.cancel != nil {
		s.cancel()
	}
	status, ok := s.outcomes[payoutID]
	if !ok {
		return nil, errors.New("connection reset")
	}
	return &model.PayoutRequest{ID: payoutID, Status: status}, nil
}

func TestProcessPending(t *testing.T) {
	payouts := &stubPayouts{
		pending: []model.PayoutRequest{{ID: "p-1"}, {ID: "p-2"}, {ID: "p-3"}},
		outcomes: map[string]model.Status{
			"p-1": model.StatusCompleted,
			"p-2": model.StatusFailed,
		},
	}
	processor := NewProcessor(payouts, config.ScheduleConfig{PayoutBatchSize: 3, PayoutPerSecond: 1000, PayoutProcessedBy: "processor"}, zap.NewNop())

	completed, failed, err := processor.ProcessPending(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, completed)
	assert.Equal(t, 2, failed)
	assert.Equal(t, 3, payouts.limit)
	assert.Equal(t, []string{"p-1", "p-2", "p-3"}, payouts.processed)
}

func TestProcessPendingStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	payouts := &stubPayouts{
		pending:  []model.PayoutRequest{{ID: "p-1"}, {ID: "p-2"}},
		outcomes: map[string]model.Status{"p-1": model.StatusCompleted, "p-2": model.StatusCompleted},
		cancel:   cancel,
	}
	processor := NewProcessor(payouts, config.ScheduleConfig{PayoutBatchSize: 2, PayoutPerSecond: 1000}, zap.NewNop())

	completed, _, err := processor.ProcessPending(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, completed)
	assert.Equal(t, []string{"p-1"}, payouts.processed)
}
