package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product string

const (
	ProductAirtime     Product = "airtime"
	ProductElectricity Product = "electricity"
)

func (p Product) Valid() bool {
	return p == ProductAirtime || p == ProductElectricity
}

type Order struct {
	UserID    string
	Product   Product
	Amount    decimal.Decimal
	Recipient string
	Reference string
}

// Receipt is what the seller gets back for a fulfilled order.
type Receipt struct {
	Reference         string
	LedgerEntryID     string
	Product           Product
	Amount            decimal.Decimal
	Recipient         string
	Provider          string
	ProviderReference string
	Token             string
	CompletedAt       time.Time
}
