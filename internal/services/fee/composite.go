package fee

import (
	"strings"

	"github.com/shopspring/decimal"
)

// IsEnvironmentalPermit reports whether a permit type is the designated
// Environmental Permit category. Upstream data may supply the display name
// or the canonical identifier; both are checked here and nowhere else. The
// name match ignores case and surrounding whitespace, the id match is exact.
func IsEnvironmentalPermit(permitTypeName, permitTypeID string) bool {
	if strings.EqualFold(strings.TrimSpace(permitTypeName), EnvironmentalPermitName) {
		return true
	}
	return strings.TrimSpace(permitTypeID) == EnvironmentalPermitTypeID
}

// CompositeFee returns the flat supplemental charge for the designated
// category, or exactly zero for any other permit type. The rule is
// stateless: reclassifying a draft and re-running the pipeline recomputes
// the charge from scratch, never accumulating it.
func CompositeFee(permitTypeName, permitTypeID string) decimal.Decimal {
	if IsEnvironmentalPermit(permitTypeName, permitTypeID) {
		return EnvironmentalPermitCompositeFee
	}
	return decimal.Zero
}
