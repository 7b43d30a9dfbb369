package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/msmkdenis/yap-poolledger/internal/pool/model"
)

type PoolResponse struct {
	GatewayAccountID string          `json:"gateway_account_id"`
	Total            decimal.Decimal `json:"total"`
	Allocated        decimal.Decimal `json:"allocated"`
	Reserved         decimal.Decimal `json:"reserved"`
	Unallocated      decimal.Decimal `json:"unallocated"`
	Unsettled        decimal.Decimal `json:"unsettled"`
	LastSyncedAt     string          `json:"last_synced_at,omitempty"`
	UpdatedAt        string          `json:"updated_at"`
}

func MapToPoolResponse(pool model.PoolAccount) PoolResponse {
	return PoolResponse{
		GatewayAccountID: pool.GatewayAccountID,
		Total:            pool.Total,
		Allocated:        pool.Allocated,
		Reserved:         pool.Reserved,
		Unallocated:      pool.Unallocated,
		Unsettled:        pool.Unsettled,
		LastSyncedAt:     formatTime(pool.LastSyncedAt),
		UpdatedAt:        pool.UpdatedAt.Format(time.RFC3339),
	}
}

type HealthResponse struct {
	Status        string          `json:"status"`
	Unallocated   decimal.Decimal `json:"unallocated"`
	Unsettled     decimal.Decimal `json:"unsettled"`
	Spendable     decimal.Decimal `json:"spendable"`
	WarningFloor  decimal.Decimal `json:"warning_floor"`
	CriticalFloor decimal.Decimal `json:"critical_floor"`
	LastSyncedAt  string          `json:"last_synced_at,omitempty"`
}

func MapToHealthResponse(report model.HealthReport) HealthResponse {
	return HealthResponse{
		Status:        string(report.Status),
		Unallocated:   report.Unallocated,
		Unsettled:     report.Unsettled,
		Spendable:     report.Spendable,
		WarningFloor:  report.WarningFloor,
		CriticalFloor: report.CriticalFloor,
		LastSyncedAt:  formatTime(report.LastSyncedAt),
	}
}

type SyncResponse struct {
	Previous        decimal.Decimal `json:"previous"`
	Settled         decimal.Decimal `json:"settled"`
	Current         decimal.Decimal `json:"current"`
	Delta           decimal.Decimal `json:"delta"`
	Allowed         decimal.Decimal `json:"allowed"`
	WithinTolerance bool            `json:"within_tolerance"`
	SyncedAt        string          `json:"synced_at"`
}

func MapToSyncResponse(result model.SyncResult) SyncResponse {
	return SyncResponse{
		Previous:        result.Previous,
		Settled:         result.Settled,
		Current:         result.Current,
		Delta:           result.Delta,
		Allowed:         result.Allowed,
		WithinTolerance: result.WithinTolerance,
		SyncedAt:        result.SyncedAt.Format(time.RFC3339),
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
