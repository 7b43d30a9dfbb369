package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryType string

const (
	TypeDeposit    EntryType = "DEPOSIT"
	TypeSale       EntryType = "SALE"
	TypePayout     EntryType = "PAYOUT"
	TypeRefund     EntryType = "REFUND"
	TypeFee        EntryType = "FEE"
	TypeAdjustment EntryType = "ADJUSTMENT"
)

var EntryTypes = []EntryType{TypeDeposit, TypeSale, TypePayout, TypeRefund, TypeFee, TypeAdjustment}

// Credits reports whether a completed entry of this type adds to the user's
// balance. Adjustments are admin top-ups.
func (t EntryType) Credits() bool {
	switch t {
	case TypeDeposit, TypeRefund, TypeAdjustment:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) IsTerminal() bool {
	return s != StatusPending
}

type Entry struct {
	ID            string          `db:"id"`
	UserID        string          `db:"user_id"`
	Type          EntryType       `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Status        Status          `db:"status"`
	Description   string          `db:"description"`
	Reference     string          `db:"reference"`
	Metadata      map[string]any  `db:"metadata"`
	FailureReason string          `db:"failure_reason"`
	CreatedAt     time.Time       `db:"created_at"`
	CompletedAt   *time.Time      `db:"completed_at"`
	FailedAt      *time.Time      `db:"failed_at"`
}

// TypeTotal is the count and sum of entries of one type.
type TypeTotal struct {
	Type   EntryType       `db:"type"`
	Count  int64           `db:"count"`
	Amount decimal.Decimal `db:"amount"`
}

// ImpliedBalance rebuilds what a user should own from completed entries:
// deposits, refunds and adjustments minus sales, payouts and fees.
func ImpliedBalance(totals []TypeTotal) decimal.Decimal {
	implied := decimal.Zero
	for _, total := range totals {
		if total.Type.Credits() {
			implied = implied.Add(total.Amount)
		} else {
			implied = implied.Sub(total.Amount)
		}
	}
	return implied
}
