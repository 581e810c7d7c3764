package fee

import "github.com/shopspring/decimal"

// The designated permit category attracting the flat composite fee. Upstream
// data may carry the display name or the canonical identifier, so both are
// published here; IsEnvironmentalPermit is the only place they are compared.
const (
	EnvironmentalPermitName   = "Environmental Permit"
	EnvironmentalPermitTypeID = "PT-ENV"
)

// Statutory processing-day allowances per activity level.
const (
	ProcessingDaysLevel21 = 30
	ProcessingDaysLevel2x = 60
	ProcessingDaysLevel3  = 90

	// DefaultProcessingDays applies to unrecognized activity levels. It is
	// the longest statutory window, so an estimate never promises a faster
	// review than the authority could owe.
	DefaultProcessingDays = 90
)

// Identifiers of the statutory forms a computed fee maps to.
const (
	AdministrationFormID = "FORM-ADM-01"
	TechnicalFormID      = "FORM-TEC-01"
)

var (
	// EnvironmentalPermitCompositeFee is the flat supplemental charge for
	// the designated category. A policy amount, not a proration: it never
	// scales with processing days.
	EnvironmentalPermitCompositeFee = decimal.NewFromInt(2000)

	// DefaultAnnualRecurrentFee backs estimates when the system of record
	// has no matching schedule. Breakdowns computed from it carry
	// Source=default so callers can tell them from authoritative quotes.
	DefaultAnnualRecurrentFee = decimal.NewFromInt(10000)

	daysPerYear = decimal.NewFromInt(365)
)
