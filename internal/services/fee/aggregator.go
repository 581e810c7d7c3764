package fee

import (
	"github.com/shopspring/decimal"

	"permitdesk/internal/models"
)

// Aggregate packages the breakdown returned to callers. Pure assembly: the
// total is always the sum of the two parts and nothing else feeds it.
func Aggregate(schedule models.FeeSchedule, administrationFee, compositeFee decimal.Decimal) models.FeeBreakdown {
	return models.FeeBreakdown{
		AdministrationFee:  administrationFee,
		CompositeFee:       compositeFee,
		TotalFee:           administrationFee.Add(compositeFee),
		ProcessingDays:     schedule.ProcessingDays,
		AdministrationForm: AdministrationFormID,
		TechnicalForm:      TechnicalFormID,
		Source:             schedule.Source,
	}
}
