package fee

import "permitdesk/internal/models"

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordComputation(models.ScheduleSource) {}
func (n *NoopMetricsCollector) RecordValidationFailure()                {}
func (n *NoopMetricsCollector) RecordLookupDegraded(string)             {}
func (n *NoopMetricsCollector) RecordCacheHit(string)                   {}
func (n *NoopMetricsCollector) RecordCacheMiss(string)                  {}
