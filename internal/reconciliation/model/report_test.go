package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var thresholds = Thresholds{
	Epsilon:        decimal.RequireFromString("0.01"),
	CriticalAmount: decimal.NewFromInt(1000),
	CriticalRatio:  decimal.RequireFromString("0.05"),
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name       string
		expected   string
		difference string
		severity   Severity
	}{
		{name: "exact", expected: "500", difference: "0", severity: SeverityNone},
		{name: "rounding below epsilon", expected: "500", difference: "0.009", severity: SeverityNone},
		{name: "at epsilon", expected: "500", difference: "0.01", severity: SeverityWarning},
		{name: "small relative drift", expected: "10000", difference: "-20", severity: SeverityWarning},
		{name: "large absolute drift", expected: "100000", difference: "1000", severity: SeverityCritical},
		{name: "large relative drift", expected: "100", difference: "-5", severity: SeverityCritical},
		{name: "nothing expected", expected: "0", difference: "3", severity: SeverityWarning},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			severity := thresholds.Classify(decimal.RequireFromString(test.expected), decimal.RequireFromString(test.difference))
			assert.Equal(t, test.severity, severity)
		})
	}
}

func TestReportSeverity(t *testing.T) {
	report := &Report{}
	assert.Equal(t, SeverityNone, report.Severity())

	report.Add(Discrepancy{Scope: ScopeUser, Severity: SeverityNone})
	assert.Empty(t, report.Discrepancies)

	report.Add(Discrepancy{Scope: ScopeUser, Severity: SeverityWarning})
	assert.Equal(t, SeverityWarning, report.Severity())

	report.StuckReservations = append(report.StuckReservations, StuckReservation{EntryID: "entry-1"})
	assert.Equal(t, SeverityCritical, report.Severity())
}
