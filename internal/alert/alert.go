package alert

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert is an operator-facing notification. It is never shown to users.
type Alert struct {
	Source   string         `json:"source"`
	Severity Severity       `json:"severity"`
	Summary  string         `json:"summary"`
	Details  map[string]any `json:"details,omitempty"`
	RaisedAt time.Time      `json:"raised_at"`
}

// Alerter mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_alerter.go -package=mock github.com/msmkdenis/yap-poolledger/internal/alert Alerter
type Alerter interface {
	Raise(ctx context.Context, alert Alert) error
}

type LogAlerter struct {
	logger *zap.Logger
}

func NewLogAlerter(logger *zap.Logger) *LogAlerter {
	return &LogAlerter{logger: logger}
}

func (l *LogAlerter) Raise(_ context.Context, alert Alert) error {
	fields := []zap.Field{
		zap.String("source", alert.Source),
		zap.String("severity", string(alert.Severity)),
		zap.Any("details", alert.Details),
		zap.Time("raised_at", alert.RaisedAt),
	}

	if alert.Severity == SeverityCritical {
		l.logger.Error(alert.Summary, fields...)
	} else {
		l.logger.Warn(alert.Summary, fields...)
	}

	return nil
}

// Multi fans an alert out to every alerter and joins their errors.
type Multi []Alerter

func (m Multi) Raise(ctx context.Context, alert Alert) error {
	var errs []error
	for _, alerter := range m {
		if err := alerter.Raise(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
