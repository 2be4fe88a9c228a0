package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VatRate is a percent rate, e.g. 20 for 20% VAT.
type VatRate struct {
	ID            string          `json:"id"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate time.Time       `json:"effectiveDate"`
	AddedBy       string          `json:"addedBy"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
}
