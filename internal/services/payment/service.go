// Package payment collects computed fee totals by card. It is a downstream
// consumer of the fee engine and reads only the public breakdown fields.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log"

	"permitdesk/internal/config"
	"permitdesk/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/charge"
	"gorm.io/gorm"
)

var (
	ErrNothingToCollect = errors.New("fee total must be positive")
	ErrChargeFailed     = errors.New("fee charge was not accepted")
)

type Service interface {
	// CollectFee charges the breakdown's total against the given card token
	// and records the attempt. applicationRef ties the payment back to the
	// application draft the fee was computed for.
	CollectFee(ctx context.Context, applicationRef string, breakdown models.FeeBreakdown, cardToken string) (*models.FeePayment, error)
}

type service struct {
	db       *gorm.DB
	currency string
	charge   func(params *stripe.ChargeParams) (*stripe.Charge, error)
}

func NewService(db *gorm.DB) Service {
	if db == nil {
		panic("db is required")
	}
	stripe.Key = config.GetEnv("STRIPE_SECRET_KEY", "")
	return &service{
		db:       db,
		currency: config.GetEnv("FEE_CURRENCY", "usd"),
		charge:   charge.New,
	}
}

// CollectFee persists a pending record before charging, so a successful
// charge can never end up without a record, and a record-keeping failure
// after the charge is never surfaced as a failed payment.
func (s *service) CollectFee(ctx context.Context, applicationRef string, breakdown models.FeeBreakdown, cardToken string) (*models.FeePayment, error) {
	if !breakdown.TotalFee.IsPositive() {
		return nil, ErrNothingToCollect
	}

	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(minorUnits(breakdown.TotalFee)),
		Currency:    stripe.String(s.currency),
		Description: stripe.String(fmt.Sprintf("Permit application fee %s", applicationRef)),
	}
	params.Context = ctx
	if err := params.SetSource(cardToken); err != nil {
		return nil, err
	}

	record := &models.FeePayment{
		Reference:      uuid.NewString(),
		ApplicationRef: applicationRef,
		Amount:         breakdown.TotalFee,
		Currency:       s.currency,
		Status:         models.PaymentStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	ch, err := s.charge(params)
	if err != nil {
		if dbErr := s.db.WithContext(ctx).Model(record).Update("status", models.PaymentStatusFailed).Error; dbErr != nil {
			log.Printf("failed to mark payment %s failed: %v", record.Reference, dbErr)
		}
		record.Status = models.PaymentStatusFailed
		return nil, fmt.Errorf("%w: %v", ErrChargeFailed, err)
	}

	updates := map[string]interface{}{
		"provider_charge_id": ch.ID,
		"status":             string(ch.Status),
	}
	if err := s.db.WithContext(ctx).Model(record).Updates(updates).Error; err != nil {
		// The card was charged; the pending record still ties the charge
		// back, so this must not surface as a payment failure.
		log.Printf("failed to update payment %s after charge %s: %v", record.Reference, ch.ID, err)
	}
	record.ProviderChargeID = ch.ID
	record.Status = string(ch.Status)
	return record, nil
}

// minorUnits converts a 2-decimal fee amount to the currency's minor unit.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
