package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
)

const (
	SingletonID = 1
	scope       = "pool"
)

type Health string

const (
	HealthHealthy  Health = "healthy"
	HealthWarning  Health = "warning"
	HealthCritical Health = "critical"
)

type PoolAccount struct {
	ID               int             `db:"id"`
	GatewayAccountID string          `db:"gateway_account_id"`
	Total            decimal.Decimal `db:"total"`
	Allocated        decimal.Decimal `db:"allocated"`
	Reserved         decimal.Decimal `db:"reserved"`
	Unallocated      decimal.Decimal `db:"unallocated"`
	// Unsettled is money paid out through the gateway since the last sync.
	// Total still counts it until the next sync reads the wallet.
	Unsettled    decimal.Decimal `db:"unsettled"`
	LastSyncedAt *time.Time      `db:"last_synced_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func NewPoolAccount(gatewayAccountID string) PoolAccount {
	return PoolAccount{
		ID:               SingletonID,
		GatewayAccountID: gatewayAccountID,
		Total:            decimal.Zero,
		Allocated:        decimal.Zero,
		Reserved:         decimal.Zero,
		Unallocated:      decimal.Zero,
		Unsettled:        decimal.Zero,
	}
}

// Recompute restores unallocated = total - allocated - reserved.
func (p *PoolAccount) Recompute() {
	p.Unallocated = p.Total.Sub(p.Allocated).Sub(p.Reserved)
}

// Spendable is the unallocated figure less outflow the wallet has already
// paid but the last sync has not seen.
func (p *PoolAccount) Spendable() decimal.Decimal {
	return p.Unallocated.Sub(p.Unsettled)
}

func (p *PoolAccount) HasUnallocated(amount decimal.Decimal) bool {
	return p.Spendable().GreaterThanOrEqual(amount)
}

// Allocate moves unallocated funds to the allocated bucket.
func (p *PoolAccount) Allocate(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount
	}
	if !p.HasUnallocated(amount) {
		return apperrors.NewInsufficientBalanceError(scope, amount, p.Spendable())
	}

	p.Allocated = p.Allocated.Add(amount)
	p.Recompute()
	return nil
}

// Deallocate shrinks the allocated bucket after funds left a user balance
// and the gateway wallet. The amount stays unsettled until the next sync.
func (p *PoolAccount) Deallocate(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount
	}
	if p.Allocated.LessThan(amount) {
		return apperrors.NewInvalidStateError("pool allocation", p.Allocated.String(), "deallocate "+amount.String()+" from")
	}

	p.Allocated = p.Allocated.Sub(amount)
	p.Unsettled = p.Unsettled.Add(amount)
	p.Recompute()
	return nil
}

type Tolerance struct {
	Absolute decimal.Decimal
	Ratio    decimal.Decimal
}

// Allowed is the largest jump accepted without flagging: the bigger of the
// absolute bound and ratio * previous.
func (t Tolerance) Allowed(previous decimal.Decimal) decimal.Decimal {
	relative := previous.Abs().Mul(t.Ratio)
	if relative.GreaterThan(t.Absolute) {
		return relative
	}
	return t.Absolute
}

type SyncResult struct {
	Previous        decimal.Decimal
	Settled         decimal.Decimal
	Current         decimal.Decimal
	Delta           decimal.Decimal
	Allowed         decimal.Decimal
	WithinTolerance bool
	SyncedAt        time.Time
}

// Sync adopts the gateway-reported balance as the pool total and settles
// the outflow recorded since the previous sync. Delta is measured against
// the total expected after that outflow. The first sync is always within
// tolerance.
func (p *PoolAccount) Sync(gatewayBalance decimal.Decimal, tolerance Tolerance, now time.Time) SyncResult {
	previous := p.Total
	settled := p.Unsettled
	expected := previous.Sub(settled)
	delta := gatewayBalance.Sub(expected)
	allowed := tolerance.Allowed(expected)

	p.Total = gatewayBalance
	p.Unsettled = decimal.Zero
	p.Recompute()
	firstSync := p.LastSyncedAt == nil
	p.LastSyncedAt = &now

	return SyncResult{
		Previous:        previous,
		Settled:         settled,
		Current:         gatewayBalance,
		Delta:           delta,
		Allowed:         allowed,
		WithinTolerance: firstSync || delta.Abs().LessThanOrEqual(allowed),
		SyncedAt:        now,
	}
}

type HealthThresholds struct {
	WarningFloor  decimal.Decimal
	CriticalFloor decimal.Decimal
}

// Health grades the spendable figure, so unsettled outflow counts against
// the floors before the next sync.
func (p *PoolAccount) Health(thresholds HealthThresholds) Health {
	spendable := p.Spendable()
	switch {
	case spendable.LessThanOrEqual(thresholds.CriticalFloor):
		return HealthCritical
	case spendable.LessThan(thresholds.WarningFloor):
		return HealthWarning
	default:
		return HealthHealthy
	}
}

// Consistent reports whether the unallocated figure matches the other three.
func (p *PoolAccount) Consistent() bool {
	return p.Unallocated.Equal(p.Total.Sub(p.Allocated).Sub(p.Reserved))
}

type HealthReport struct {
	Status        Health
	Unallocated   decimal.Decimal
	Unsettled     decimal.Decimal
	Spendable     decimal.Decimal
	WarningFloor  decimal.Decimal
	CriticalFloor decimal.Decimal
	LastSyncedAt  *time.Time
}
