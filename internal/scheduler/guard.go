package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

type Job func(ctx context.Context) error

// Guard skips a run while the previous one is still going, in this process
// and, with a Locker, across instances.
type Guard struct {
	name    string
	job     Job
	locker  Locker
	lockTTL time.Duration
	running atomic.Bool
	logger  *zap.Logger
}

func NewGuard(name string, job Job, locker Locker, lockTTL time.Duration, logger *zap.Logger) *Guard {
	return &Guard{
		name:    name,
		job:     job,
		locker:  locker,
		lockTTL: lockTTL,
		logger:  logger,
	}
}

// Run reports whether the job ran. A skipped run is not an error.
func (g *Guard) Run(ctx context.Context) (bool, error) {
	if !g.running.CompareAndSwap(false, true) {
		g.logger.Info("Previous run still in progress, skipping", zap.String("job", g.name))
		return false, nil
	}
	defer g.running.Store(false)

	if g.locker != nil {
		release, acquired, err := g.locker.Acquire(ctx, g.name, g.lockTTL)
		if err != nil {
			return false, err
		}
		if !acquired {
			g.logger.Info("Job running on another instance, skipping", zap.String("job", g.name))
			return false, nil
		}
		defer func() {
			if errRelease := release(context.WithoutCancel(ctx)); errRelease != nil {
				g.logger.Warn("Unable to release job lock", zap.String("job", g.name), zap.Error(errRelease))
			}
		}()
	}

	return true, g.job(ctx)
}
