package handlers

import (
	"errors"
	"net/http"

	"budget-tracker/internal/dto"
	apierrors "budget-tracker/internal/errors"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// RolloverHandler exposes the month rollover generator
type RolloverHandler struct {
	rolloverService services.RolloverServiceInterface
}

func NewRolloverHandler(rolloverService services.RolloverServiceInterface) *RolloverHandler {
	return &RolloverHandler{rolloverService: rolloverService}
}

// GenerateBudgets creates next month's budgets for every user
// @Summary Generate next month's budgets
// @Description Guarded by a shared keyword. Safe to re-run: existing budgets are left alone.
// @Tags Rollover
// @Accept json
// @Produce json
// @Param request body dto.GenerateBudgetRequest true "Keyword, as a JSON string or {\"keyword\": ...}"
// @Success 200 {string} string "Budgets successfully generated!"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 403 {object} errors.ErrorResponse "ROLLOVER_001 - Incorrect keyword"
// @Failure 500 {object} errors.ErrorResponse "ROLLOVER_002 - Rollover stopped before every user was processed"
// @Router /generateBudget [post]
func (h *RolloverHandler) GenerateBudgets(c echo.Context) error {
	var req dto.GenerateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	result, err := h.rolloverService.Generate(c.Request().Context(), req.Keyword)
	if err != nil {
		if errors.Is(err, services.ErrInvalidKeyword) {
			return SendError(c, apierrors.RolloverInvalidKeyword)
		}

		// a partial result means some users were already rolled over
		if result != nil {
			return SendError(c, apierrors.RolloverFailed, apierrors.WithDetails(
				"users processed before the failure keep their new budgets; re-run to continue",
			))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, result.Message)
}
