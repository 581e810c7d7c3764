package fee

import "strings"

// ValidationError carries the validator's messages verbatim. It blocks the
// computation before any lookup happens and is surfaced to the caller
// unchanged; nothing is retried or auto-corrected.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid classification request: " + strings.Join(e.Errors, "; ")
}
