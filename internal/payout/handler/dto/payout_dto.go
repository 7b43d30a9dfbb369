package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/msmkdenis/yap-poolledger/internal/payout/model"
)

type CreatePayoutRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type RejectPayoutRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type ResolvePayoutRequest struct {
	Outcome          string `json:"outcome" validate:"required,oneof=completed failed"`
	GatewayReference string `json:"gateway_reference" validate:"required_if=Outcome completed,max=200"`
	Reason           string `json:"reason" validate:"max=500"`
}

type PayoutResponse struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	GatewayReference string          `json:"gateway_reference,omitempty"`
	ProcessedBy      string          `json:"processed_by,omitempty"`
	FailureReason    string          `json:"failure_reason,omitempty"`
	CreatedAt        string          `json:"created_at"`
	ResolvedAt       string          `json:"resolved_at,omitempty"`
}

func MapToPayoutResponse(payout model.PayoutRequest) PayoutResponse {
	response := PayoutResponse{
		ID:               payout.ID,
		UserID:           payout.UserID,
		Amount:           payout.Amount,
		Status:           string(payout.Status),
		GatewayReference: payout.GatewayReference,
		ProcessedBy:      payout.ProcessedBy,
		FailureReason:    payout.FailureReason,
		CreatedAt:        payout.CreatedAt.Format(time.RFC3339),
	}
	if payout.ResolvedAt != nil {
		response.ResolvedAt = payout.ResolvedAt.Format(time.RFC3339)
	}
	return response
}

func MapToPayoutResponses(payouts []model.PayoutRequest) []PayoutResponse {
	responses := make([]PayoutResponse, 0, len(payouts))
	for _, payout := range payouts {
		responses = append(responses, MapToPayoutResponse(payout))
	}
	return responses
}
