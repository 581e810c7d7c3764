// Package errors defines the coded error taxonomy surfaced to API consumers.
package errors

// DomainError is a business-rule error with a stable code for clients.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
