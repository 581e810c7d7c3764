package fee

import (
	"context"

	"permitdesk/internal/models"
)

type service struct {
	validator *Validator
	resolver  *Resolver
	metrics   MetricsCollector
}

// NewService wires the computation pipeline. The resolver is required;
// metrics may be nil.
func NewService(resolver *Resolver, metrics MetricsCollector) Service {
	if resolver == nil {
		panic("resolver is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &service{
		validator: NewValidator(),
		resolver:  resolver,
		metrics:   metrics,
	}
}

// ComputeFee runs validator -> resolver -> proration -> composite rule ->
// aggregation. The service remembers nothing between calls: identical
// requests yield identical breakdowns, and a reclassified draft simply
// recomputes on the next call.
func (s *service) ComputeFee(ctx context.Context, req models.ClassificationRequest) (*models.FeeBreakdown, error) {
	if result := s.validator.Validate(req); !result.IsValid {
		s.metrics.RecordValidationFailure()
		return nil, &ValidationError{Errors: result.Errors}
	}

	schedule, err := s.resolver.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	administrationFee := AdministrationFee(schedule)
	compositeFee := CompositeFee(schedule.PermitTypeName, schedule.PermitTypeID)

	breakdown := Aggregate(schedule, administrationFee, compositeFee)
	s.metrics.RecordComputation(schedule.Source)
	return &breakdown, nil
}
