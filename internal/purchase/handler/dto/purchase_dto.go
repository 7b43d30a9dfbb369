package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/msmkdenis/yap-poolledger/internal/purchase/model"
)

type PurchaseRequest struct {
	Product   string          `json:"product" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Recipient string          `json:"recipient" validate:"required,max=64"`
	Reference string          `json:"reference" validate:"omitempty,max=64"`
}

type ReceiptResponse struct {
	Reference         string          `json:"reference"`
	Product           string          `json:"product"`
	Amount            decimal.Decimal `json:"amount"`
	Recipient         string          `json:"recipient"`
	Provider          string          `json:"provider"`
	ProviderReference string          `json:"provider_reference"`
	Token             string          `json:"token,omitempty"`
	CompletedAt       string          `json:"completed_at"`
}

func MapToOrder(userID string, request PurchaseRequest) model.Order {
	return model.Order{
		UserID:    userID,
		Product:   model.Product(request.Product),
		Amount:    request.Amount,
		Recipient: request.Recipient,
		Reference: request.Reference,
	}
}

func MapToReceiptResponse(receipt model.Receipt) ReceiptResponse {
	return ReceiptResponse{
		Reference:         receipt.Reference,
		Product:           string(receipt.Product),
		Amount:            receipt.Amount,
		Recipient:         receipt.Recipient,
		Provider:          receipt.Provider,
		ProviderReference: receipt.ProviderReference,
		Token:             receipt.Token,
		CompletedAt:       receipt.CompletedAt.Format(time.RFC3339),
	}
}
