package fee

import (
	"context"
	"encoding/json"
	"testing"

	"permitdesk/internal/models"
	"permitdesk/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(repo repositories.FeeScheduleRepository) Service {
	return NewService(NewResolver(repo, nil, nil), nil)
}

func rowFor(level, permitTypeName, permitTypeID, annualFee string) *models.PrescribedActivity {
	return &models.PrescribedActivity{
		PrescribedActivityID: "PA-TEST",
		ActivityLevel:        level,
		ActivityType:         "Air Emissions",
		PermitTypeName:       permitTypeName,
		PermitTypeID:         permitTypeID,
		AnnualRecurrentFee:   decimal.RequireFromString(annualFee),
	}
}

func TestService_ComputeFee(t *testing.T) {
	t.Run("prorated fee for a non-environmental permit", func(t *testing.T) {
		repo := new(mockScheduleRepo)
		repo.On("GetByClassification", mock.Anything, "2.1", "Air Emissions", "").
			Return(rowFor("2.1", "Waste Permit", "PT-WST", "36500"), nil)

		breakdown, err := newTestService(repo).ComputeFee(context.Background(), models.ClassificationRequest{
			ActivityLevel: "2.1",
			ActivityType:  "Air Emissions",
			PermitType:    "Waste Permit",
		})

		require.NoError(t, err)
		assert.Equal(t, "3000.00", breakdown.AdministrationFee.StringFixed(2))
		assert.True(t, breakdown.CompositeFee.IsZero())
		assert.Equal(t, "3000.00", breakdown.TotalFee.StringFixed(2))
		assert.Equal(t, 30, breakdown.ProcessingDays)
		assert.Equal(t, models.ScheduleSourceDatabase, breakdown.Source)
		assert.Equal(t, AdministrationFormID, breakdown.AdministrationForm)
		assert.Equal(t, TechnicalFormID, breakdown.TechnicalForm)
	})

	t.Run("environmental permit adds the flat composite fee", func(t *testing.T) {
		repo := new(mockScheduleRepo)
		repo.On("GetByClassification", mock.Anything, "3", "Air Emissions", "").
			Return(rowFor("3", EnvironmentalPermitName, EnvironmentalPermitTypeID, "36500"), nil)

		breakdown, err := newTestService(repo).ComputeFee(context.Background(), models.ClassificationRequest{
			ActivityLevel: "3",
			ActivityType:  "Air Emissions",
		})

		require.NoError(t, err)
		assert.Equal(t, "9000.00", breakdown.AdministrationFee.StringFixed(2))
		assert.Equal(t, "2000.00", breakdown.CompositeFee.StringFixed(2))
		assert.Equal(t, "11000.00", breakdown.TotalFee.StringFixed(2))
		assert.Equal(t, 90, breakdown.ProcessingDays)
	})

	t.Run("unresolvable classification still succeeds with defaults", func(t *testing.T) {
		repo := new(mockScheduleRepo)
		repo.On("GetByClassification", mock.Anything, "2.3", "Unknown", "").
			Return(nil, repositories.ErrScheduleNotFound)

		breakdown, err := newTestService(repo).ComputeFee(context.Background(), models.ClassificationRequest{
			ActivityLevel: "2.3",
			ActivityType:  "Unknown",
			PermitType:    "Waste Permit",
		})

		require.NoError(t, err)
		assert.Equal(t, models.ScheduleSourceDefault, breakdown.Source)
		// 10000 * 60 / 365 = 1643.8356...
		assert.Equal(t, "1643.84", breakdown.AdministrationFee.StringFixed(2))
		assert.True(t, breakdown.CompositeFee.IsZero())
	})

	t.Run("composite fee matched by permit type name on the default path", func(t *testing.T) {
		repo := new(mockScheduleRepo)
		repo.On("GetByClassification", mock.Anything, "2.1", "Unknown", "").
			Return(nil, repositories.ErrScheduleNotFound)

		breakdown, err := newTestService(repo).ComputeFee(context.Background(), models.ClassificationRequest{
			ActivityLevel: "2.1",
			ActivityType:  "Unknown",
			PermitType:    EnvironmentalPermitName,
		})

		require.NoError(t, err)
		assert.Equal(t, models.ScheduleSourceDefault, breakdown.Source)
		assert.True(t, breakdown.CompositeFee.Equal(EnvironmentalPermitCompositeFee))
		assert.True(t, breakdown.TotalFee.Equal(breakdown.AdministrationFee.Add(breakdown.CompositeFee)))
	})

	t.Run("invalid request performs no lookup", func(t *testing.T) {
		repo := new(mockScheduleRepo)

		_, err := newTestService(repo).ComputeFee(context.Background(), models.ClassificationRequest{
			ActivityType: "Air Emissions",
		})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Errors, "Activity level is required")
		repo.AssertNotCalled(t, "GetByPrescribedActivityID", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "GetByClassification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("total always equals the sum of the parts", func(t *testing.T) {
		annualFees := []string{"0", "100.37", "36500", "54750.25", "999999.99"}
		levels := []string{"2.1", "2.2", "3", "unknown"}

		for _, annual := range annualFees {
			for _, level := range levels {
				repo := new(mockScheduleRepo)
				repo.On("GetByClassification", mock.Anything, level, "Air Emissions", "").
					Return(rowFor(level, EnvironmentalPermitName, EnvironmentalPermitTypeID, annual), nil)

				breakdown, err := newTestService(repo).ComputeFee(context.Background(), models.ClassificationRequest{
					ActivityLevel: level,
					ActivityType:  "Air Emissions",
				})

				require.NoError(t, err)
				assert.True(t, breakdown.TotalFee.Equal(breakdown.AdministrationFee.Add(breakdown.CompositeFee)),
					"annual=%s level=%s: %s != %s + %s", annual, level,
					breakdown.TotalFee, breakdown.AdministrationFee, breakdown.CompositeFee)
				assert.True(t, breakdown.CompositeFee.Equal(EnvironmentalPermitCompositeFee))
			}
		}
	})
}

func TestService_ComputeFee_Idempotent(t *testing.T) {
	repo := new(mockScheduleRepo)
	repo.On("GetByClassification", mock.Anything, "2.4", "Water Discharge", "").
		Return(rowFor("2.4", "Water Permit", "PT-WTR", "43800"), nil)

	svc := newTestService(repo)
	req := models.ClassificationRequest{
		ActivityLevel: "2.4",
		ActivityType:  "Water Discharge",
	}

	first, err := svc.ComputeFee(context.Background(), req)
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := svc.ComputeFee(context.Background(), req)
		require.NoError(t, err)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, firstJSON, againJSON)
	}
}

func TestService_ComputeFee_ReclassificationNeverAccumulates(t *testing.T) {
	repo := new(mockScheduleRepo)
	repo.On("GetByClassification", mock.Anything, "2.1", "Air Emissions", "").
		Return(rowFor("2.1", EnvironmentalPermitName, EnvironmentalPermitTypeID, "36500"), nil)
	repo.On("GetByClassification", mock.Anything, "2.1", "Waste Management", "").
		Return(rowFor("2.1", "Waste Permit", "PT-WST", "36500"), nil)

	svc := newTestService(repo)
	envReq := models.ClassificationRequest{ActivityLevel: "2.1", ActivityType: "Air Emissions"}
	otherReq := models.ClassificationRequest{ActivityLevel: "2.1", ActivityType: "Waste Management"}

	// Toggle the classification back and forth; the composite fee must be
	// recomputed from base each time, never stacked.
	for i := 0; i < 5; i++ {
		env, err := svc.ComputeFee(context.Background(), envReq)
		require.NoError(t, err)
		assert.Equal(t, "2000.00", env.CompositeFee.StringFixed(2))
		assert.Equal(t, "5000.00", env.TotalFee.StringFixed(2))

		other, err := svc.ComputeFee(context.Background(), otherReq)
		require.NoError(t, err)
		assert.True(t, other.CompositeFee.IsZero())
		assert.Equal(t, "3000.00", other.TotalFee.StringFixed(2))
	}
}
