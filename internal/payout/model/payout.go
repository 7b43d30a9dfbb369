package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
)

const resource = "payout request"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
	StatusCancelled  Status = "CANCELLED"
)

// Outcome is the gateway result an operator confirms for a PROCESSING request.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeFailed    Outcome = "failed"
)

// PayoutRequest funds are reserved when the request is created, so a
// request can never be paid from money spent elsewhere in the meantime.
type PayoutRequest struct {
	ID               string          `db:"id"`
	UserID           string          `db:"user_id"`
	Amount           decimal.Decimal `db:"amount"`
	Status           Status          `db:"status"`
	LedgerEntryID    string          `db:"ledger_entry_id"`
	GatewayReference string          `db:"gateway_reference"`
	ProcessedBy      string          `db:"processed_by"`
	FailureReason    string          `db:"failure_reason"`
	CreatedAt        time.Time       `db:"created_at"`
	ProcessingAt     *time.Time      `db:"processing_at"`
	ResolvedAt       *time.Time      `db:"resolved_at"`
}

func (p *PayoutRequest) StartProcessing(processedBy string, now time.Time) error {
	if err := p.transition(StatusPending, StatusProcessing, "process"); err != nil {
		return err
	}
	p.ProcessedBy = processedBy
	p.ProcessingAt = &now
	return nil
}

func (p *PayoutRequest) Complete(gatewayReference string, now time.Time) error {
	if err := p.transition(StatusProcessing, StatusCompleted, "complete"); err != nil {
		return err
	}
	p.GatewayReference = gatewayReference
	p.ResolvedAt = &now
	return nil
}

func (p *PayoutRequest) Fail(reason string, now time.Time) error {
	if err := p.transition(StatusProcessing, StatusFailed, "fail"); err != nil {
		return err
	}
	p.FailureReason = reason
	p.ResolvedAt = &now
	return nil
}

// Reject turns down a request before any gateway call was made.
func (p *PayoutRequest) Reject(reason string, now time.Time) error {
	if err := p.transition(StatusPending, StatusFailed, "reject"); err != nil {
		return err
	}
	p.FailureReason = reason
	p.ResolvedAt = &now
	return nil
}

func (p *PayoutRequest) Cancel(userID string, now time.Time) error {
	if p.UserID != userID {
		return apperrors.ErrForbidden
	}
	if err := p.transition(StatusPending, StatusCancelled, "cancel"); err != nil {
		return err
	}
	p.ResolvedAt = &now
	return nil
}

func (p *PayoutRequest) transition(from, to Status, action string) error {
	if p.Status != from {
		return apperrors.NewInvalidStateError(resource, string(p.Status), action)
	}
	p.Status = to
	return nil
}
