package fee

import (
	"context"
	"errors"
	"log"
	"strings"

	"permitdesk/internal/models"
	"permitdesk/internal/repositories"
	"permitdesk/internal/repositories/cache"
)

// Resolver turns an activity classification into the statutory fee schedule.
// It degrades to built-in defaults when the system of record cannot answer:
// the platform must be able to quote an estimate even with incomplete
// reference data.
type Resolver struct {
	repo    repositories.FeeScheduleRepository
	cache   ScheduleCache
	metrics MetricsCollector
}

// NewResolver creates a resolver. The repository is required; cache and
// metrics may be nil.
func NewResolver(repo repositories.FeeScheduleRepository, scheduleCache ScheduleCache, metrics MetricsCollector) *Resolver {
	if repo == nil {
		panic("fee schedule repository is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &Resolver{repo: repo, cache: scheduleCache, metrics: metrics}
}

// Resolve never fails on a lookup miss. Context cancellation is the one
// exception: it is returned to the caller as an explicit error so a
// half-resolved schedule is never used.
func (r *Resolver) Resolve(ctx context.Context, req models.ClassificationRequest) (models.FeeSchedule, error) {
	days := ProcessingDaysForLevel(req.ActivityLevel)

	row, err := r.lookup(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return models.FeeSchedule{}, err
		}
		if !errors.Is(err, repositories.ErrScheduleNotFound) {
			log.Printf("fee schedule lookup degraded to defaults: %v", err)
			r.metrics.RecordLookupDegraded(err.Error())
		}
		return models.FeeSchedule{
			AnnualRecurrentFee: DefaultAnnualRecurrentFee,
			ProcessingDays:     days,
			Source:             models.ScheduleSourceDefault,
			PermitTypeName:     req.PermitType,
		}, nil
	}

	permitTypeName := row.PermitTypeName
	if permitTypeName == "" {
		permitTypeName = req.PermitType
	}

	return models.FeeSchedule{
		AnnualRecurrentFee: row.AnnualRecurrentFee,
		ProcessingDays:     days,
		Source:             models.ScheduleSourceDatabase,
		PermitTypeName:     permitTypeName,
		PermitTypeID:       row.PermitTypeID,
	}, nil
}

// lookup tries the prescribed-activity-id key first, then the classification
// combination. A miss on the first key falls through to the second.
func (r *Resolver) lookup(ctx context.Context, req models.ClassificationRequest) (*models.PrescribedActivity, error) {
	if req.PrescribedActivityID != "" {
		row, err := r.cachedLookup(ctx, cache.ScheduleKeyByID(req.PrescribedActivityID), func(ctx context.Context) (*models.PrescribedActivity, error) {
			return r.repo.GetByPrescribedActivityID(ctx, req.PrescribedActivityID)
		})
		if err == nil {
			return row, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
	}

	key := cache.ScheduleKeyByClassification(req.ActivityLevel, req.ActivityType, req.ActivitySubCategory)
	return r.cachedLookup(ctx, key, func(ctx context.Context) (*models.PrescribedActivity, error) {
		return r.repo.GetByClassification(ctx, req.ActivityLevel, req.ActivityType, req.ActivitySubCategory)
	})
}

func (r *Resolver) cachedLookup(ctx context.Context, key string, fetch func(context.Context) (*models.PrescribedActivity, error)) (*models.PrescribedActivity, error) {
	if r.cache != nil {
		if row, err := r.cache.GetSchedule(ctx, key); err == nil && row != nil {
			r.metrics.RecordCacheHit(key)
			return row, nil
		}
		r.metrics.RecordCacheMiss(key)
	}

	row, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.SetSchedule(ctx, key, row); err != nil {
			log.Printf("failed to cache fee schedule %s: %v", key, err)
		}
	}
	return row, nil
}

// ProcessingDaysForLevel maps an activity level to its statutory
// processing-day allowance. A pure function of the level alone, independent
// of the fee lookup outcome, and always positive.
func ProcessingDaysForLevel(activityLevel string) int {
	switch strings.TrimSpace(activityLevel) {
	case "2.1":
		return ProcessingDaysLevel21
	case "2.2", "2.3", "2.4":
		return ProcessingDaysLevel2x
	case "3":
		return ProcessingDaysLevel3
	default:
		return DefaultProcessingDays
	}
}
