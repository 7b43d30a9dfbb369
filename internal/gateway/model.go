package gateway

import (
	"github.com/shopspring/decimal"
)

type WalletBalance struct {
	Total     decimal.Decimal `json:"total"`
	Available decimal.Decimal `json:"available"`
	Pending   decimal.Decimal `json:"pending"`
	OnHold    decimal.Decimal `json:"on_hold"`
	Currency  string          `json:"currency"`
}

type PayoutRequest struct {
	Reference string          `json:"reference"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type PayoutResult struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

type PurchaseRequest struct {
	Product   string          `json:"product"`
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
}

// PurchaseResult is what a provider returned for a fulfilled purchase.
// Token is set for electricity vouchers.
type PurchaseResult struct {
	Reference string         `json:"reference"`
	Provider  string         `json:"provider"`
	Token     string         `json:"token,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type errorResponse struct {
	Message string `json:"message"`
}
