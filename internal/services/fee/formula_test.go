package fee

import (
	"testing"

	"permitdesk/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAdministrationFee(t *testing.T) {
	tests := []struct {
		name           string
		annualFee      string
		processingDays int
		want           string
	}{
		{
			name:           "round annual fee over 30 days",
			annualFee:      "36500",
			processingDays: 30,
			want:           "3000.00",
		},
		{
			name:           "round annual fee over 90 days",
			annualFee:      "36500",
			processingDays: 90,
			want:           "9000.00",
		},
		{
			name:           "rounds to cents",
			annualFee:      "100",
			processingDays: 60,
			want:           "16.44", // 6000/365 = 16.4383...
		},
		{
			name:           "default schedule over the longest window",
			annualFee:      "10000",
			processingDays: 90,
			want:           "2465.75", // 900000/365 = 2465.7534...
		},
		{
			name:           "zero annual fee",
			annualFee:      "0",
			processingDays: 30,
			want:           "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := models.FeeSchedule{
				AnnualRecurrentFee: decimal.RequireFromString(tt.annualFee),
				ProcessingDays:     tt.processingDays,
			}
			got := AdministrationFee(schedule)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestAdministrationFee_Idempotent(t *testing.T) {
	schedule := models.FeeSchedule{
		AnnualRecurrentFee: decimal.RequireFromString("54750.00"),
		ProcessingDays:     60,
	}

	first := AdministrationFee(schedule)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first.String(), AdministrationFee(schedule).String())
	}
}
