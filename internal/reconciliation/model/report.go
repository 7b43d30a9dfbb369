package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

func (s Severity) rank() int {
	switch s {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// Worse returns the more severe of s and other.
func (s Severity) Worse(other Severity) Severity {
	if other.rank() > s.rank() {
		return other
	}
	return s
}

type Scope string

const (
	ScopeUser        Scope = "user"
	ScopePool        Scope = "pool"
	ScopeGateway     Scope = "gateway"
	ScopeReservation Scope = "reservation"
)

type Mode string

const (
	ModeSampled Mode = "sampled"
	ModeFull    Mode = "full"
)

// Thresholds classify a difference between what the books imply and what a
// store holds.
type Thresholds struct {
	Epsilon        decimal.Decimal
	CriticalAmount decimal.Decimal
	CriticalRatio  decimal.Decimal
}

// Classify returns none below epsilon, critical when the difference reaches
// the critical amount or the critical share of expected, warning otherwise.
func (t Thresholds) Classify(expected, difference decimal.Decimal) Severity {
	drift := difference.Abs()
	if drift.LessThan(t.Epsilon) {
		return SeverityNone
	}
	if drift.GreaterThanOrEqual(t.CriticalAmount) {
		return SeverityCritical
	}
	if !expected.IsZero() && drift.Div(expected.Abs()).GreaterThanOrEqual(t.CriticalRatio) {
		return SeverityCritical
	}
	return SeverityWarning
}

// Discrepancy is one comparison. Difference is Actual minus Expected.
type Discrepancy struct {
	Scope      Scope           `json:"scope"`
	Subject    string          `json:"subject"`
	Expected   decimal.Decimal `json:"expected"`
	Actual     decimal.Decimal `json:"actual"`
	Difference decimal.Decimal `json:"difference"`
	Severity   Severity        `json:"severity"`
}

func (d Discrepancy) IsReconciled() bool {
	return d.Severity == SeverityNone
}

// BalanceCheck compares the balance implied by a user's completed ledger
// entries with available plus reserved.
type BalanceCheck struct {
	UserID       string
	Implied      decimal.Decimal
	Available    decimal.Decimal
	Reserved     decimal.Decimal
	Difference   decimal.Decimal
	IsReconciled bool
	Severity     Severity
}

func (c BalanceCheck) Discrepancy() Discrepancy {
	return Discrepancy{
		Scope:      ScopeUser,
		Subject:    c.UserID,
		Expected:   c.Implied,
		Actual:     c.Available.Add(c.Reserved),
		Difference: c.Difference,
		Severity:   c.Severity,
	}
}

// StuckReservation is a PENDING sale or processing payout nobody resolved.
type StuckReservation struct {
	EntryID   string          `json:"entry_id"`
	Type      string          `json:"type"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	Age       time.Duration   `json:"age"`
}

type Report struct {
	Mode              Mode
	StartedAt         time.Time
	FinishedAt        time.Time
	UsersChecked      int
	Discrepancies     []Discrepancy
	StuckReservations []StuckReservation
	Errors            []string
}

// Add keeps only unreconciled results.
func (r *Report) Add(discrepancy Discrepancy) {
	if discrepancy.IsReconciled() {
		return
	}
	r.Discrepancies = append(r.Discrepancies, discrepancy)
}

func (r *Report) Severity() Severity {
	severity := SeverityNone
	for _, discrepancy := range r.Discrepancies {
		severity = severity.Worse(discrepancy.Severity)
	}
	if len(r.StuckReservations) > 0 {
		severity = severity.Worse(SeverityCritical)
	}
	return severity
}
