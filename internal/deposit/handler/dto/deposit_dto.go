package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/msmkdenis/yap-poolledger/internal/deposit/model"
)

type CreateDepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type RejectDepositRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type DepositResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	ApprovedBy     string          `json:"approved_by,omitempty"`
	RejectedReason string          `json:"rejected_reason,omitempty"`
	CreatedAt      string          `json:"created_at"`
	ResolvedAt     string          `json:"resolved_at,omitempty"`
}

func MapToDepositResponse(deposit model.DepositRequest) DepositResponse {
	response := DepositResponse{
		ID:             deposit.ID,
		UserID:         deposit.UserID,
		Amount:         deposit.Amount,
		Status:         string(deposit.Status),
		ApprovedBy:     deposit.ApprovedBy,
		RejectedReason: deposit.RejectedReason,
		CreatedAt:      deposit.CreatedAt.Format(time.RFC3339),
	}
	if deposit.ResolvedAt != nil {
		response.ResolvedAt = deposit.ResolvedAt.Format(time.RFC3339)
	}
	return response
}

func MapToDepositResponses(deposits []model.DepositRequest) []DepositResponse {
	responses := make([]DepositResponse, 0, len(deposits))
	for _, deposit := range deposits {
		responses = append(responses, MapToDepositResponse(deposit))
	}
	return responses
}
