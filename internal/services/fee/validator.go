package fee

import (
	"strings"

	"permitdesk/internal/models"
)

// Validation messages surfaced verbatim to the end user.
const (
	msgActivityLevelRequired = "Activity level is required"
	msgCategoryRequired      = "Activity type or activity sub-category is required"
)

// ValidationResult is the validator's verdict on a classification request.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors,omitempty"`
}

// Validator checks that a classification request is well-formed before any
// lookup or computation is attempted. It has no side effects and the same
// request always gets the same verdict.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate collects every problem with the request rather than stopping at
// the first, so the caller can present the full list at once.
func (v *Validator) Validate(req models.ClassificationRequest) ValidationResult {
	var errs []string

	if strings.TrimSpace(req.ActivityLevel) == "" {
		errs = append(errs, msgActivityLevelRequired)
	}
	if strings.TrimSpace(req.ActivityType) == "" && strings.TrimSpace(req.ActivitySubCategory) == "" {
		errs = append(errs, msgCategoryRequired)
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
