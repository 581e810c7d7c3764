// Package handlers contains the HTTP handlers exposed by the API.
package handlers

import (
	"errors"

	apperrors "permitdesk/internal/errors"
	"permitdesk/internal/models"
	"permitdesk/internal/repositories"
	"permitdesk/internal/services/fee"
	"permitdesk/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// FeeHandler serves fee quotes and schedule inspection.
type FeeHandler struct {
	feeService fee.Service
	schedules  repositories.FeeScheduleRepository
}

func NewFeeHandler(feeService fee.Service, schedules repositories.FeeScheduleRepository) *FeeHandler {
	return &FeeHandler{
		feeService: feeService,
		schedules:  schedules,
	}
}

// Quote computes the fee breakdown for an activity classification. Public:
// applicants use it for estimates before submitting an application.
func (h *FeeHandler) Quote(c *fiber.Ctx) error {
	var req models.ClassificationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	breakdown, err := h.feeService.ComputeFee(c.Context(), req)
	if err != nil {
		var vErr *fee.ValidationError
		if errors.As(err, &vErr) {
			return response.ValidationErrors(c, vErr.Errors)
		}
		return response.ServerError(c, "fee computation failed")
	}

	return response.Success(c, "fee computed", breakdown)
}

// GetSchedule returns the raw statutory schedule row for a prescribed
// activity. Reviewer-facing.
func (h *FeeHandler) GetSchedule(c *fiber.Ctx) error {
	id := c.Params("prescribedActivityID")
	if id == "" {
		return response.BadRequest(c, "prescribed activity id is required")
	}

	row, err := h.schedules.GetByPrescribedActivityID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrScheduleNotFound) {
			return response.NotFound(c, apperrors.ErrScheduleNotFound.Message)
		}
		return response.ServerError(c, "schedule lookup failed")
	}

	return response.Success(c, "schedule found", row)
}
