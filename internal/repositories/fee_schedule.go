package repositories

import (
	"context"
	"errors"

	"permitdesk/internal/models"
)

var (
	ErrScheduleNotFound = errors.New("fee schedule not found")
)

// FeeScheduleRepository defines read access to the statutory fee schedule.
// The engine never writes through it; rows are maintained by the seeding
// tool and upstream reference-data imports.
type FeeScheduleRepository interface {
	// GetByPrescribedActivityID looks up the canonical record keyed by the
	// prescribed activity identifier.
	GetByPrescribedActivityID(ctx context.Context, prescribedActivityID string) (*models.PrescribedActivity, error)

	// GetByClassification looks up a record by activity level combined with
	// the activity type and/or sub-category. At least one of the two
	// category fields must be supplied.
	GetByClassification(ctx context.Context, activityLevel, activityType, activitySubCategory string) (*models.PrescribedActivity, error)
}
