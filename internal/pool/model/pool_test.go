package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
)

func poolWith(total, allocated, reserved int64) PoolAccount {
	p := NewPoolAccount("gw-1")
	p.Total = decimal.NewFromInt(total)
	p.Allocated = decimal.NewFromInt(allocated)
	p.Reserved = decimal.NewFromInt(reserved)
	p.Recompute()
	return p
}

func TestAllocate(t *testing.T) {
	p := poolWith(1000, 200, 0)
	require.True(t, decimal.NewFromInt(800).Equal(p.Unallocated))

	require.NoError(t, p.Allocate(decimal.NewFromInt(300)))

	assert.True(t, decimal.NewFromInt(500).Equal(p.Allocated))
	assert.True(t, decimal.NewFromInt(500).Equal(p.Unallocated))
	assert.True(t, p.Consistent())
}

func TestAllocateBeyondUnallocated(t *testing.T) {
	p := poolWith(1000, 200, 100)

	err := p.Allocate(decimal.NewFromInt(701))

	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
	assert.True(t, decimal.NewFromInt(200).Equal(p.Allocated))
	assert.True(t, decimal.NewFromInt(700).Equal(p.Unallocated))
}

func TestDeallocate(t *testing.T) {
	testCases := []struct {
		name                string
		pool                PoolAccount
		amount              decimal.Decimal
		expectedErr         error
		expectedAllocated   decimal.Decimal
		expectedUnallocated decimal.Decimal
		expectedUnsettled   decimal.Decimal
	}{
		{
			name:                "Success",
			pool:                poolWith(1000, 500, 0),
			amount:              decimal.NewFromInt(150),
			expectedAllocated:   decimal.NewFromInt(350),
			expectedUnallocated: decimal.NewFromInt(650),
			expectedUnsettled:   decimal.NewFromInt(150),
		},
		{
			name:                "More than allocated",
			pool:                poolWith(1000, 100, 0),
			amount:              decimal.NewFromInt(150),
			expectedErr:         apperrors.ErrInvalidState,
			expectedAllocated:   decimal.NewFromInt(100),
			expectedUnallocated: decimal.NewFromInt(900),
			expectedUnsettled:   decimal.Zero,
		},
		{
			name:                "Zero amount",
			pool:                poolWith(1000, 100, 0),
			amount:              decimal.Zero,
			expectedErr:         apperrors.ErrInvalidAmount,
			expectedAllocated:   decimal.NewFromInt(100),
			expectedUnallocated: decimal.NewFromInt(900),
			expectedUnsettled:   decimal.Zero,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			p := test.pool
			err := p.Deallocate(test.amount)
			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
			} else {
				require.NoError(t, err)
			}
			assert.True(t, test.expectedAllocated.Equal(p.Allocated))
			assert.True(t, test.expectedUnallocated.Equal(p.Unallocated))
			assert.True(t, test.expectedUnsettled.Equal(p.Unsettled))
			assert.True(t, p.Consistent())
		})
	}
}

func TestSync(t *testing.T) {
	tolerance := Tolerance{Absolute: decimal.NewFromInt(100), Ratio: decimal.RequireFromString("0.05")}
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	testCases := []struct {
		name           string
		pool           func() PoolAccount
		gatewayBalance decimal.Decimal
		expectedWithin bool
	}{
		{
			name:           "First sync always accepted",
			pool:           func() PoolAccount { return poolWith(0, 0, 0) },
			gatewayBalance: decimal.NewFromInt(1_000_000),
			expectedWithin: true,
		},
		{
			name: "Small change within absolute bound",
			pool: func() PoolAccount {
				p := poolWith(1000, 200, 0)
				p.LastSyncedAt = &now
				return p
			},
			gatewayBalance: decimal.NewFromInt(1090),
			expectedWithin: true,
		},
		{
			name: "Jump beyond bound",
			pool: func() PoolAccount {
				p := poolWith(1000, 200, 0)
				p.LastSyncedAt = &now
				return p
			},
			gatewayBalance: decimal.NewFromInt(700),
			expectedWithin: false,
		},
		{
			name: "Large pool uses relative bound",
			pool: func() PoolAccount {
				p := poolWith(100_000, 0, 0)
				p.LastSyncedAt = &now
				return p
			},
			gatewayBalance: decimal.NewFromInt(104_000),
			expectedWithin: true,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			p := test.pool()
			result := p.Sync(test.gatewayBalance, tolerance, now)

			assert.Equal(t, test.expectedWithin, result.WithinTolerance)
			assert.True(t, test.gatewayBalance.Equal(p.Total))
			assert.True(t, test.gatewayBalance.Sub(result.Previous).Equal(result.Delta))
			assert.True(t, p.Consistent())
			require.NotNil(t, p.LastSyncedAt)
			assert.Equal(t, now, *p.LastSyncedAt)
		})
	}
}

func TestHealth(t *testing.T) {
	thresholds := HealthThresholds{WarningFloor: decimal.NewFromInt(1000), CriticalFloor: decimal.Zero}

	testCases := []struct {
		name     string
		pool     PoolAccount
		expected Health
	}{
		{name: "Healthy", pool: poolWith(5000, 1000, 0), expected: HealthHealthy},
		{name: "Exactly at warning floor", pool: poolWith(2000, 1000, 0), expected: HealthHealthy},
		{name: "Warning", pool: poolWith(1500, 1000, 0), expected: HealthWarning},
		{name: "Critical at zero headroom", pool: poolWith(1000, 1000, 0), expected: HealthCritical},
		{name: "Critical when short", pool: poolWith(900, 1000, 0), expected: HealthCritical},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.pool.Health(thresholds))
		})
	}
}

func TestDeallocateKeepsSpendableUntilSync(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tolerance := Tolerance{Absolute: decimal.NewFromInt(10), Ratio: decimal.Zero}
	p := poolWith(1000, 500, 0)
	p.LastSyncedAt = &now

	require.NoError(t, p.Deallocate(decimal.NewFromInt(300)))

	assert.True(t, decimal.NewFromInt(800).Equal(p.Unallocated))
	assert.True(t, decimal.NewFromInt(500).Equal(p.Spendable()))
	assert.False(t, p.HasUnallocated(decimal.NewFromInt(501)))
	assert.ErrorIs(t, p.Allocate(decimal.NewFromInt(501)), apperrors.ErrInsufficientBalance)
	assert.Equal(t, HealthWarning, p.Health(HealthThresholds{WarningFloor: decimal.NewFromInt(600), CriticalFloor: decimal.Zero}))

	// The wallet paid the 300 out, so the next sync sees 700.
	result := p.Sync(decimal.NewFromInt(700), tolerance, now.Add(time.Minute))

	assert.True(t, result.WithinTolerance)
	assert.True(t, decimal.NewFromInt(300).Equal(result.Settled))
	assert.True(t, result.Delta.IsZero())
	assert.True(t, p.Unsettled.IsZero())
	assert.True(t, decimal.NewFromInt(500).Equal(p.Unallocated))
	assert.True(t, decimal.NewFromInt(500).Equal(p.Spendable()))
	assert.True(t, p.Consistent())
}

func TestSyncFlagsUnexplainedDropAfterSettlement(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tolerance := Tolerance{Absolute: decimal.NewFromInt(10), Ratio: decimal.Zero}
	p := poolWith(1000, 500, 0)
	p.LastSyncedAt = &now
	require.NoError(t, p.Deallocate(decimal.NewFromInt(300)))

	result := p.Sync(decimal.NewFromInt(600), tolerance, now.Add(time.Minute))

	assert.False(t, result.WithinTolerance)
	assert.True(t, decimal.NewFromInt(-100).Equal(result.Delta))
	assert.True(t, p.Unsettled.IsZero())
}
