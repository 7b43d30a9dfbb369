package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestImpliedBalance(t *testing.T) {
	testCases := []struct {
		name     string
		totals   []TypeTotal
		expected decimal.Decimal
	}{
		{
			name:     "No entries",
			expected: decimal.Zero,
		},
		{
			name: "Deposit, sale and payout",
			totals: []TypeTotal{
				{Type: TypeDeposit, Count: 1, Amount: decimal.NewFromInt(50)},
				{Type: TypeSale, Count: 1, Amount: decimal.NewFromInt(20)},
				{Type: TypePayout, Count: 1, Amount: decimal.NewFromInt(10)},
			},
			expected: decimal.NewFromInt(20),
		},
		{
			name: "Every type",
			totals: []TypeTotal{
				{Type: TypeDeposit, Amount: decimal.NewFromInt(1000)},
				{Type: TypeRefund, Amount: decimal.RequireFromString("12.50")},
				{Type: TypeAdjustment, Amount: decimal.NewFromInt(5)},
				{Type: TypeSale, Amount: decimal.RequireFromString("300.25")},
				{Type: TypePayout, Amount: decimal.NewFromInt(200)},
				{Type: TypeFee, Amount: decimal.RequireFromString("2.25")},
			},
			expected: decimal.NewFromInt(515),
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			got := ImpliedBalance(test.totals)
			assert.True(t, test.expected.Equal(got), "expected %s, got %s", test.expected, got)
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}
