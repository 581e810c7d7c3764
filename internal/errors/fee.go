package errors

var (
	ErrScheduleNotFound = &DomainError{
		Code:    "SCHEDULE_NOT_FOUND",
		Message: "no fee schedule matches the prescribed activity",
	}
	ErrPaymentFailed = &DomainError{
		Code:    "PAYMENT_FAILED",
		Message: "fee payment could not be collected",
	}
)
