package models

import "github.com/shopspring/decimal"

// FeeBreakdown is the result of one fee computation, returned to the caller
// (review summary, invoice generator, payment collection). Immutable once
// produced; the engine holds no state across calls, so callers that cache a
// breakdown simply recompute after reclassifying.
//
// TotalFee always equals AdministrationFee + CompositeFee.
type FeeBreakdown struct {
	AdministrationFee  decimal.Decimal `json:"administration_fee"`
	CompositeFee       decimal.Decimal `json:"composite_fee"`
	TotalFee           decimal.Decimal `json:"total_fee"`
	ProcessingDays     int             `json:"processing_days"`
	AdministrationForm string          `json:"administration_form"`
	TechnicalForm      string          `json:"technical_form"`
	Source             ScheduleSource  `json:"source"`
}
