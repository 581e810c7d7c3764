package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FeePayment statuses as stored on the record.
const (
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusPending   = "pending"
	PaymentStatusFailed    = "failed"
)

// FeePayment records one collection attempt against a computed fee total.
type FeePayment struct {
	gorm.Model
	Reference        string          `json:"reference" gorm:"uniqueIndex;not null"`
	ApplicationRef   string          `json:"application_ref" gorm:"index"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:numeric(12,2)"`
	Currency         string          `json:"currency" gorm:"default:'USD'"`
	Status           string          `json:"status"`
	ProviderChargeID string          `json:"provider_charge_id"`
}
