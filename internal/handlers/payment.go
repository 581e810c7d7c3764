package handlers

import (
	"errors"

	apperrors "permitdesk/internal/errors"
	"permitdesk/internal/models"
	"permitdesk/internal/services/fee"
	"permitdesk/internal/services/payment"
	"permitdesk/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler collects computed fee totals.
type PaymentHandler struct {
	feeService     fee.Service
	paymentService payment.Service
}

func NewPaymentHandler(feeService fee.Service, paymentService payment.Service) *PaymentHandler {
	return &PaymentHandler{
		feeService:     feeService,
		paymentService: paymentService,
	}
}

type payFeeRequest struct {
	ApplicationRef string                       `json:"application_ref"`
	Classification models.ClassificationRequest `json:"classification"`
	CardToken      string                       `json:"card_token"`
}

// Pay recomputes the fee for the supplied classification and charges the
// total. The fee is always recomputed server-side rather than trusted from
// the client.
func (h *PaymentHandler) Pay(c *fiber.Ctx) error {
	var req payFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.ApplicationRef == "" {
		return response.BadRequest(c, "application_ref is required")
	}
	if req.CardToken == "" {
		return response.BadRequest(c, "card_token is required")
	}

	breakdown, err := h.feeService.ComputeFee(c.Context(), req.Classification)
	if err != nil {
		var vErr *fee.ValidationError
		if errors.As(err, &vErr) {
			return response.ValidationErrors(c, vErr.Errors)
		}
		return response.ServerError(c, "fee computation failed")
	}

	record, err := h.paymentService.CollectFee(c.Context(), req.ApplicationRef, *breakdown, req.CardToken)
	if err != nil {
		if errors.Is(err, payment.ErrNothingToCollect) {
			return response.BadRequest(c, err.Error())
		}
		return response.Error(c, fiber.StatusPaymentRequired, apperrors.ErrPaymentFailed.Message)
	}

	return response.Success(c, "fee collected", fiber.Map{
		"payment":   record,
		"breakdown": breakdown,
	})
}
