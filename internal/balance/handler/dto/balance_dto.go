package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/msmkdenis/yap-poolledger/internal/balance/model"
	ledger "github.com/msmkdenis/yap-poolledger/internal/ledger/model"
)

type BalanceResponse struct {
	Available decimal.Decimal `json:"available"`
	Pending   decimal.Decimal `json:"pending"`
	Reserved  decimal.Decimal `json:"reserved"`
	Withdrawn decimal.Decimal `json:"withdrawn"`
}

func MapToBalanceResponse(balance model.Balance) BalanceResponse {
	return BalanceResponse{
		Available: balance.Available,
		Pending:   balance.Pending,
		Reserved:  balance.Reserved,
		Withdrawn: balance.Withdrawn,
	}
}

type ActivityResponse struct {
	Type   string          `json:"type"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type EntryResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Description string          `json:"description,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

type SummaryResponse struct {
	Balance  BalanceResponse    `json:"balance"`
	Since    string             `json:"since"`
	Activity []ActivityResponse `json:"activity"`
	Recent   []EntryResponse    `json:"recent"`
}

func MapToSummaryResponse(summary model.Summary) SummaryResponse {
	response := SummaryResponse{
		Balance:  MapToBalanceResponse(summary.Balance),
		Since:    summary.Since.Format(time.RFC3339),
		Activity: make([]ActivityResponse, 0, len(summary.Activity)),
		Recent:   make([]EntryResponse, 0, len(summary.Recent)),
	}

	for _, a := range summary.Activity {
		response.Activity = append(response.Activity, ActivityResponse{
			Type:   string(a.Type),
			Count:  a.Count,
			Amount: a.Amount,
		})
	}

	for _, e := range summary.Recent {
		response.Recent = append(response.Recent, MapToEntryResponse(e))
	}

	return response
}

func MapToEntryResponse(entry ledger.Entry) EntryResponse {
	return EntryResponse{
		ID:          entry.ID,
		Type:        string(entry.Type),
		Amount:      entry.Amount,
		Status:      string(entry.Status),
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
	}
}

type InitializeBalanceRequest struct {
	UserID string `json:"user_id" validate:"required"`
}
