package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/metrics"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

type Scheduler struct {
	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
	locker  Locker
	lockTTL time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// New builds a scheduler. locker may be nil for single-instance setups.
func New(locker Locker, lockTTL time.Duration, metrics *metrics.Metrics, logger *zap.Logger) *Scheduler {
	cronLogger := cronLogger{logger: logger.Sugar()}
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:    cron.New(cron.WithLogger(cronLogger), cron.WithChain(cron.Recover(cronLogger))),
		ctx:     ctx,
		cancel:  cancel,
		locker:  locker,
		lockTTL: lockTTL,
		metrics: metrics,
		logger:  logger,
	}
}

// Register schedules job under spec, e.g. "@every 5m". An empty spec leaves
// the job disabled.
func (s *Scheduler) Register(name string, spec string, job Job) error {
	if spec == "" {
		s.logger.Info("Job disabled", zap.String("job", name))
		return nil
	}

	guard := NewGuard(name, job, s.locker, s.lockTTL, s.logger)
	_, err := s.cron.AddFunc(spec, func() {
		s.run(name, guard)
	})
	if err != nil {
		return apperrors.NewValueError("invalid schedule for "+name, utils.Caller(), err)
	}

	s.logger.Info("Job scheduled", zap.String("job", name), zap.String("spec", spec))
	return nil
}

func (s *Scheduler) run(name string, guard *Guard) {
	started := time.Now()
	ran, err := guard.Run(s.ctx)
	switch {
	case err != nil:
		s.metrics.JobRun(name, "error")
		s.logger.Error("Job failed", zap.String("job", name), zap.Error(err))
	case !ran:
		s.metrics.JobRun(name, "skipped")
	default:
		s.metrics.JobRun(name, "ok")
		s.logger.Debug("Job finished", zap.String("job", name), zap.Duration("took", time.Since(started)))
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs and waits for them until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) {
	s.cancel()
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("Scheduler stopped before jobs finished")
	}
}

type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
