package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
)

const resource = "deposit request"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

type DepositRequest struct {
	ID             string          `db:"id"`
	UserID         string          `db:"user_id"`
	Amount         decimal.Decimal `db:"amount"`
	Status         Status          `db:"status"`
	LedgerEntryID  string          `db:"ledger_entry_id"`
	ApprovedBy     string          `db:"approved_by"`
	RejectedReason string          `db:"rejected_reason"`
	CreatedAt      time.Time       `db:"created_at"`
	ResolvedAt     *time.Time      `db:"resolved_at"`
}

// Approve, Reject and Cancel are only valid from PENDING. Every other
// status is terminal.
func (d *DepositRequest) Approve(adminID string, now time.Time) error {
	if err := d.resolve(StatusApproved, "approve", now); err != nil {
		return err
	}
	d.ApprovedBy = adminID
	return nil
}

func (d *DepositRequest) Reject(reason string, now time.Time) error {
	if err := d.resolve(StatusRejected, "reject", now); err != nil {
		return err
	}
	d.RejectedReason = reason
	return nil
}

func (d *DepositRequest) Cancel(userID string, now time.Time) error {
	if d.UserID != userID {
		return apperrors.ErrForbidden
	}
	return d.resolve(StatusCancelled, "cancel", now)
}

func (d *DepositRequest) resolve(status Status, action string, now time.Time) error {
	if d.Status != StatusPending {
		return apperrors.NewInvalidStateError(resource, string(d.Status), action)
	}
	d.Status = status
	d.ResolvedAt = &now
	return nil
}
