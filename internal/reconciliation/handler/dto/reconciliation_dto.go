package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/msmkdenis/yap-poolledger/internal/reconciliation/model"
)

type StuckReservationResponse struct {
	EntryID   string          `json:"entry_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"created_at"`
	Age       string          `json:"age"`
}

type ReportResponse struct {
	Mode              string                     `json:"mode"`
	Severity          string                     `json:"severity"`
	StartedAt         string                     `json:"started_at"`
	FinishedAt        string                     `json:"finished_at"`
	UsersChecked      int                        `json:"users_checked"`
	Discrepancies     []model.Discrepancy        `json:"discrepancies"`
	StuckReservations []StuckReservationResponse `json:"stuck_reservations"`
	Errors            []string                   `json:"errors,omitempty"`
}

type BalanceCheckResponse struct {
	UserID       string          `json:"user_id"`
	Implied      decimal.Decimal `json:"implied"`
	Available    decimal.Decimal `json:"available"`
	Reserved     decimal.Decimal `json:"reserved"`
	Difference   decimal.Decimal `json:"difference"`
	IsReconciled bool            `json:"is_reconciled"`
	Severity     string          `json:"severity"`
}

func MapToReportResponse(report model.Report) ReportResponse {
	stuck := make([]StuckReservationResponse, 0, len(report.StuckReservations))
	for _, reservation := range report.StuckReservations {
		stuck = append(stuck, StuckReservationResponse{
			EntryID:   reservation.EntryID,
			UserID:    reservation.UserID,
			Amount:    reservation.Amount,
			CreatedAt: reservation.CreatedAt.Format(time.RFC3339),
			Age:       reservation.Age.Round(time.Second).String(),
		})
	}

	discrepancies := report.Discrepancies
	if discrepancies == nil {
		discrepancies = []model.Discrepancy{}
	}

	return ReportResponse{
		Mode:              string(report.Mode),
		Severity:          string(report.Severity()),
		StartedAt:         report.StartedAt.Format(time.RFC3339),
		FinishedAt:        report.FinishedAt.Format(time.RFC3339),
		UsersChecked:      report.UsersChecked,
		Discrepancies:     discrepancies,
		StuckReservations: stuck,
		Errors:            report.Errors,
	}
}

func MapToBalanceCheckResponse(check model.BalanceCheck) BalanceCheckResponse {
	return BalanceCheckResponse{
		UserID:       check.UserID,
		Implied:      check.Implied,
		Available:    check.Available,
		Reserved:     check.Reserved,
		Difference:   check.Difference,
		IsReconciled: check.IsReconciled,
		Severity:     string(check.Severity),
	}
}
