package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	ledger "github.com/msmkdenis/yap-poolledger/internal/ledger/model"
)

const scope = "user balance"

type Balance struct {
	ID        string          `db:"id"`
	UserID    string          `db:"user_id"`
	Available decimal.Decimal `db:"available"`
	Pending   decimal.Decimal `db:"pending"`
	Reserved  decimal.Decimal `db:"reserved"`
	Withdrawn decimal.Decimal `db:"withdrawn"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func NewBalance(id, userID string) Balance {
	return Balance{
		ID:        id,
		UserID:    userID,
		Available: decimal.Zero,
		Pending:   decimal.Zero,
		Reserved:  decimal.Zero,
		Withdrawn: decimal.Zero,
	}
}

// Total is everything the user owns, spendable or not.
func (b *Balance) Total() decimal.Decimal {
	return b.Available.Add(b.Pending).Add(b.Reserved)
}

func (b *Balance) HasAvailable(amount decimal.Decimal) bool {
	return b.Available.GreaterThanOrEqual(amount)
}

func (b *Balance) Reserve(amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if !b.HasAvailable(amount) {
		return apperrors.NewInsufficientBalanceError(scope, amount, b.Available)
	}

	b.Available = b.Available.Sub(amount)
	b.Reserved = b.Reserved.Add(amount)
	return nil
}

// CompleteReserved consumes a reservation: the funds have left the system.
func (b *Balance) CompleteReserved(amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if b.Reserved.LessThan(amount) {
		return apperrors.NewInvalidStateError("reservation of "+amount.String(), "reserved="+b.Reserved.String(), "complete")
	}

	b.Reserved = b.Reserved.Sub(amount)
	return nil
}

func (b *Balance) ReleaseReserved(amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if b.Reserved.LessThan(amount) {
		return apperrors.NewInvalidStateError("reservation of "+amount.String(), "reserved="+b.Reserved.String(), "release")
	}

	b.Reserved = b.Reserved.Sub(amount)
	b.Available = b.Available.Add(amount)
	return nil
}

func (b *Balance) Credit(amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}

	b.Available = b.Available.Add(amount)
	return nil
}

// RecordWithdrawal only bumps the lifetime counter; the funds already left
// through CompleteReserved.
func (b *Balance) RecordWithdrawal(amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}

	b.Withdrawn = b.Withdrawn.Add(amount)
	return nil
}

func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount
	}
	return nil
}

// Summary is the profile view of a balance and its recent ledger activity.
type Summary struct {
	Balance  Balance
	Since    time.Time
	Activity []ledger.TypeTotal
	Recent   []ledger.Entry
}
