package fee

import (
	"context"

	"permitdesk/internal/models"
)

// Service is the single operation the engine exposes to collaborators
// (review workflow, invoice generation, payment collection).
type Service interface {
	// ComputeFee converts a classification request into a fee breakdown.
	// A malformed request returns *ValidationError; a cancelled context
	// returns the context error. Lookup misses and transient system-of-
	// record failures do not fail the call, they degrade to the default
	// schedule with Source=default.
	ComputeFee(ctx context.Context, req models.ClassificationRequest) (*models.FeeBreakdown, error)
}

// ScheduleCache is the subset of cache operations the resolver needs.
type ScheduleCache interface {
	GetSchedule(ctx context.Context, key string) (*models.PrescribedActivity, error)
	SetSchedule(ctx context.Context, key string, row *models.PrescribedActivity) error
}

// MetricsCollector records engine activity. Implementations must be safe
// for concurrent use.
type MetricsCollector interface {
	RecordComputation(source models.ScheduleSource)
	RecordValidationFailure()
	RecordLookupDegraded(reason string)
	RecordCacheHit(key string)
	RecordCacheMiss(key string)
}
