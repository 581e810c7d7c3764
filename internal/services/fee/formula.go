package fee

import (
	"github.com/shopspring/decimal"

	"permitdesk/internal/models"
)

// AdministrationFee pro-rates the annual recurrent fee over the statutory
// processing-day allowance:
//
//	administrationFee = annualRecurrentFee / 365 * processingDays
//
// rounded half-up to 2 decimal places. The multiplication happens before the
// division and the result is rounded exactly once, so repeated invocations
// on the same schedule are byte-identical.
func AdministrationFee(schedule models.FeeSchedule) decimal.Decimal {
	days := decimal.NewFromInt(int64(schedule.ProcessingDays))
	return schedule.AnnualRecurrentFee.Mul(days).Div(daysPerYear).Round(2)
}
