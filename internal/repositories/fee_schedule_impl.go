package repositories

import (
	"context"
	"errors"

	"permitdesk/internal/models"

	"gorm.io/gorm"
)

type feeScheduleRepository struct {
	db *gorm.DB
}

// NewFeeScheduleRepository creates a GORM-backed fee schedule repository.
func NewFeeScheduleRepository(db *gorm.DB) FeeScheduleRepository {
	return &feeScheduleRepository{db: db}
}

func (r *feeScheduleRepository) GetByPrescribedActivityID(ctx context.Context, prescribedActivityID string) (*models.PrescribedActivity, error) {
	var row models.PrescribedActivity
	err := r.db.WithContext(ctx).
		Where("prescribed_activity_id = ?", prescribedActivityID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *feeScheduleRepository) GetByClassification(ctx context.Context, activityLevel, activityType, activitySubCategory string) (*models.PrescribedActivity, error) {
	q := r.db.WithContext(ctx).Where("activity_level = ?", activityLevel)

	switch {
	case activityType != "" && activitySubCategory != "":
		q = q.Where("activity_type = ? AND activity_sub_category = ?", activityType, activitySubCategory)
	case activityType != "":
		q = q.Where("activity_type = ?", activityType)
	case activitySubCategory != "":
		q = q.Where("activity_sub_category = ?", activitySubCategory)
	default:
		return nil, ErrScheduleNotFound
	}

	var row models.PrescribedActivity
	if err := q.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return &row, nil
}
