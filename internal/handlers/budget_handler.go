package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"budget-tracker/internal/dto"
	apierrors "budget-tracker/internal/errors"
	"budget-tracker/internal/models"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// GetAllBudgets returns every budget of the authenticated user
// @Summary List budgets
// @Description Retrieve all monthly budgets of the authenticated user, most recent first
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Budget "List of budgets"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_003 - No budgets have been found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget/all [get]
func (h *BudgetHandler) GetAllBudgets(c echo.Context) error {
	id, err := getIdentityFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	budgets, err := h.budgetService.ListBudgets(c.Request().Context(), id)
	if err != nil {
		return h.sendServiceError(c, err, models.Period{})
	}

	return c.JSON(http.StatusOK, budgets)
}

// GetBudget returns the budget for one month
// @Summary Get budget by month and year
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} models.Budget "Budget"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid month or year"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	id, err := getIdentityFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	period, err := getPeriodFromQuery(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidPeriod, apierrors.WithDetails(err.Error()))
	}

	budget, err := h.budgetService.GetBudget(c.Request().Context(), id, period)
	if err != nil {
		return h.sendServiceError(c, err, period)
	}

	return c.JSON(http.StatusOK, budget)
}

// CreateBudget stores a new monthly budget for the authenticated user
// @Summary Create a budget
// @Description The owner is always the authenticated user. Spent defaults to 0.
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} models.Budget "Budget created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 409 {object} errors.ErrorResponse "BUDGET_002 - Budget already exists for the month"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	id, err := getIdentityFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	budget := req.ToModel()
	created, err := h.budgetService.CreateBudget(c.Request().Context(), id, budget)
	if err != nil {
		return h.sendServiceError(c, err, budget.Period())
	}

	return c.JSON(http.StatusCreated, created)
}

// UpdateBudget applies a partial update to the budget for one month
// @Summary Update a budget
// @Description Only the fields present in the body are written. An empty body returns the budget unchanged.
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Param request body dto.UpdateBudgetRequest true "Fields to update"
// @Success 200 {object} models.Budget "Updated budget"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 409 {object} errors.ErrorResponse "BUDGET_002 - Target month already has a budget"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	id, err := getIdentityFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	period, err := getPeriodFromQuery(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidPeriod, apierrors.WithDetails(err.Error()))
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	patch := req.ToPatch()
	budget, err := h.budgetService.UpdateBudget(c.Request().Context(), id, period, patch)
	if err != nil {
		return h.sendServiceError(c, err, patch.Target(period))
	}

	return c.JSON(http.StatusOK, budget)
}

// DeleteBudget removes the budget for one month
// @Summary Delete a budget
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} SuccessResponse{message=string} "Budget deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid month or year"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	id, err := getIdentityFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	period, err := getPeriodFromQuery(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidPeriod, apierrors.WithDetails(err.Error()))
	}

	if err := h.budgetService.DeleteBudget(c.Request().Context(), id, period); err != nil {
		return h.sendServiceError(c, err, period)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: dto.DeletedBudgetMessage(period),
	})
}

// AccumulateSpend adds a signed change to the spent amount of a monthly or category budget
// @Summary Accumulate spend
// @Description Adds change (negative to refund) to spent. With a category the category budget is updated.
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Param request body dto.AccumulateSpendRequest true "Spend change"
// @Success 200 {object} models.Budget "Updated budget or category budget"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 / CATEGORY_BUDGET_001 - Budget not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget/spent [patch]
func (h *BudgetHandler) AccumulateSpend(c echo.Context) error {
	id, err := getIdentityFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	period, err := getPeriodFromQuery(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidPeriod, apierrors.WithDetails(err.Error()))
	}

	var req dto.AccumulateSpendRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	ctx := c.Request().Context()

	if req.Category != "" {
		budget, err := h.budgetService.AccumulateCategorySpend(ctx, id, period, req.Category, *req.Change)
		if err != nil {
			return h.sendServiceError(c, err, period)
		}
		return c.JSON(http.StatusOK, budget)
	}

	budget, err := h.budgetService.AccumulateSpend(ctx, id, period, *req.Change)
	if err != nil {
		return h.sendServiceError(c, err, period)
	}

	return c.JSON(http.StatusOK, budget)
}

// GetCategoryBudgets returns the category budgets for one month
// @Summary List category budgets
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {array} models.CategoryBudget "Category budgets, possibly empty"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid month or year"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget/category/all [get]
func (h *BudgetHandler) GetCategoryBudgets(c echo.Context) error {
	id, err := getIdentityFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	period, err := getPeriodFromQuery(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidPeriod, apierrors.WithDetails(err.Error()))
	}

	budgets, err := h.budgetService.ListCategoryBudgets(c.Request().Context(), id, period)
	if err != nil {
		return h.sendServiceError(c, err, period)
	}

	return c.JSON(http.StatusOK, budgets)
}

// sendServiceError maps budget service errors onto the API error catalogue
func (h *BudgetHandler) sendServiceError(c echo.Context, err error, period models.Period) error {
	switch {
	case errors.Is(err, services.ErrNoBudgets):
		return SendError(c, apierrors.BudgetNoneFound)
	case errors.Is(err, services.ErrBudgetNotFound):
		return SendError(c, apierrors.BudgetNotFound,
			apierrors.WithDetails(fmt.Sprintf("Budget with month: %d and year: %d not found", period.Month, period.Year)))
	case errors.Is(err, services.ErrBudgetAlreadyExists):
		return SendError(c, apierrors.BudgetAlreadyExists,
			apierrors.WithDetails(fmt.Sprintf("Budget with month: %d and year: %d already exists", period.Month, period.Year)))
	case errors.Is(err, services.ErrCategoryBudgetNotFound):
		return SendError(c, apierrors.CategoryBudgetNotFound)
	case errors.Is(err, models.ErrInvalidPeriod):
		return SendError(c, apierrors.ValidationInvalidPeriod, apierrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrNegativeValue),
		errors.Is(err, models.ErrEmptyCategory),
		errors.Is(err, models.ErrCategoryLength),
		errors.Is(err, models.ErrEmailRequired):
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrMissingIdentity):
		return SendError(c, apierrors.AuthMissingToken)
	default:
		return SendSystemError(c, err)
	}
}
