package payment

import (
	"context"
	"errors"
	"testing"

	"permitdesk/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v72"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockedService(t *testing.T) (*service, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{SkipDefaultTransaction: true},
	)
	require.NoError(t, err)

	return NewService(gdb).(*service), mock
}

func testBreakdown(total string) models.FeeBreakdown {
	return models.FeeBreakdown{
		AdministrationFee: decimal.RequireFromString(total),
		TotalFee:          decimal.RequireFromString(total),
		ProcessingDays:    30,
		Source:            models.ScheduleSourceDatabase,
	}
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"3000.00", 300000},
		{"11000.00", 1100000},
		{"16.44", 1644},
		{"0.01", 1},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := minorUnits(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewService_ConfiguresStripeKeyOnce(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_permitdesk")
	NewService(&gorm.DB{})
	assert.Equal(t, "sk_test_permitdesk", stripe.Key)
}

func TestCollectFee_RejectsNonPositiveTotal(t *testing.T) {
	svc := NewService(&gorm.DB{})

	_, err := svc.CollectFee(context.Background(), "APP-1", models.FeeBreakdown{
		TotalFee: decimal.Zero,
	}, "tok_visa")

	require.ErrorIs(t, err, ErrNothingToCollect)
}

func TestCollectFee_RecordsBeforeCharging(t *testing.T) {
	svc, mock := newMockedService(t)

	mock.ExpectQuery(`INSERT INTO "fee_payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "fee_payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	charged := false
	svc.charge = func(params *stripe.ChargeParams) (*stripe.Charge, error) {
		charged = true
		assert.Equal(t, int64(300000), *params.Amount)
		return &stripe.Charge{ID: "ch_123", Status: stripe.ChargeStatusSucceeded}, nil
	}

	record, err := svc.CollectFee(context.Background(), "APP-7", testBreakdown("3000.00"), "tok_visa")

	require.NoError(t, err)
	assert.True(t, charged)
	assert.Equal(t, "ch_123", record.ProviderChargeID)
	assert.Equal(t, models.PaymentStatusSucceeded, record.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectFee_NeverChargesWithoutRecord(t *testing.T) {
	svc, mock := newMockedService(t)

	mock.ExpectQuery(`INSERT INTO "fee_payments"`).
		WillReturnError(errors.New("insert failed"))

	charged := false
	svc.charge = func(*stripe.ChargeParams) (*stripe.Charge, error) {
		charged = true
		return &stripe.Charge{ID: "ch_123"}, nil
	}

	_, err := svc.CollectFee(context.Background(), "APP-7", testBreakdown("3000.00"), "tok_visa")

	require.Error(t, err)
	assert.False(t, charged, "card must not be charged when the record cannot be persisted")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectFee_MarksRecordFailedOnDeclinedCharge(t *testing.T) {
	svc, mock := newMockedService(t)

	mock.ExpectQuery(`INSERT INTO "fee_payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "fee_payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc.charge = func(*stripe.ChargeParams) (*stripe.Charge, error) {
		return nil, errors.New("card declined")
	}

	_, err := svc.CollectFee(context.Background(), "APP-7", testBreakdown("3000.00"), "tok_visa")

	require.ErrorIs(t, err, ErrChargeFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectFee_SuccessfulChargeSurvivesRecordUpdateFailure(t *testing.T) {
	svc, mock := newMockedService(t)

	mock.ExpectQuery(`INSERT INTO "fee_payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "fee_payments" SET`).
		WillReturnError(errors.New("connection reset"))

	svc.charge = func(*stripe.ChargeParams) (*stripe.Charge, error) {
		return &stripe.Charge{ID: "ch_456", Status: stripe.ChargeStatusSucceeded}, nil
	}

	record, err := svc.CollectFee(context.Background(), "APP-7", testBreakdown("3000.00"), "tok_visa")

	require.NoError(t, err, "a charged card must never be reported as a failed payment")
	assert.Equal(t, "ch_456", record.ProviderChargeID)
	assert.Equal(t, models.PaymentStatusSucceeded, record.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
