package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ScheduleSource tells callers whether a schedule came from the system of
// record or from the built-in defaults. Breakdowns carry it so an estimate
// is never silently indistinguishable from an authoritative quote.
type ScheduleSource string

const (
	ScheduleSourceDatabase ScheduleSource = "database"
	ScheduleSourceDefault  ScheduleSource = "default"
)

// FeeSchedule is the resolved statutory basis for one fee computation.
// Constructed fresh per request, never mutated, never persisted.
type FeeSchedule struct {
	AnnualRecurrentFee decimal.Decimal `json:"annual_recurrent_fee"`
	ProcessingDays     int             `json:"processing_days"`
	Source             ScheduleSource  `json:"source"`
	PermitTypeName     string          `json:"permit_type_name"`
	PermitTypeID       string          `json:"permit_type_id"`
}

// PrescribedActivity is a row of the statutory fee schedule held by the
// system of record. Reference data: the engine only ever reads it.
type PrescribedActivity struct {
	gorm.Model
	PrescribedActivityID string          `json:"prescribed_activity_id" gorm:"uniqueIndex;not null"`
	ActivityLevel        string          `json:"activity_level" gorm:"index:idx_classification"`
	ActivityType         string          `json:"activity_type" gorm:"index:idx_classification"`
	ActivitySubCategory  string          `json:"activity_sub_category" gorm:"index:idx_classification"`
	PermitTypeID         string          `json:"permit_type_id"`
	PermitTypeName       string          `json:"permit_type_name"`
	AnnualRecurrentFee   decimal.Decimal `json:"annual_recurrent_fee" gorm:"type:numeric(12,2)"`
}
