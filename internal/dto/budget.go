package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"budget-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Budget Request DTOs

// CreateBudgetRequest represents the request payload for creating a monthly budget.
// The owner always comes from the access token; an email in the body is ignored.
// Value is a pointer so a missing value is rejected instead of becoming 0.
type CreateBudgetRequest struct {
	Month int              `json:"month" validate:"required,min=1,max=12"`
	Year  int              `json:"year" validate:"required,min=1970,max=9999"`
	Value *decimal.Decimal `json:"value" validate:"required,budget_amount"`
	Spent *decimal.Decimal `json:"spent,omitempty" validate:"omitempty,budget_amount_signed"`
}

// ToModel converts the request into an unsaved budget; spent defaults to zero
func (r *CreateBudgetRequest) ToModel() *models.Budget {
	spent := decimal.Zero
	if r.Spent != nil {
		spent = *r.Spent
	}

	value := decimal.Zero
	if r.Value != nil {
		value = *r.Value
	}

	return &models.Budget{
		Month: r.Month,
		Year:  r.Year,
		Value: value,
		Spent: spent,
	}
}

// UpdateBudgetRequest represents a partial update. Only fields present in the body are written.
type UpdateBudgetRequest struct {
	Value *decimal.Decimal `json:"value,omitempty" validate:"omitempty,budget_amount"`
	Spent *decimal.Decimal `json:"spent,omitempty" validate:"omitempty,budget_amount_signed"`
	Month *int             `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Year  *int             `json:"year,omitempty" validate:"omitempty,min=1970,max=9999"`
}

func (r *UpdateBudgetRequest) ToPatch() *models.BudgetPatch {
	patch := models.NewBudgetPatch()
	if r.Value != nil {
		patch.SetValue(*r.Value)
	}
	if r.Spent != nil {
		patch.SetSpent(*r.Spent)
	}
	if r.Month != nil {
		patch.SetMonth(*r.Month)
	}
	if r.Year != nil {
		patch.SetYear(*r.Year)
	}
	return patch
}

// AccumulateSpendRequest adds a signed change to the spent amount.
// With a category the change lands on that category budget instead of the monthly total.
type AccumulateSpendRequest struct {
	Change   *decimal.Decimal `json:"change" validate:"required,budget_amount_signed"`
	Category string           `json:"category,omitempty" validate:"omitempty,category"`
}

// GenerateBudgetRequest carries the rollover keyword.
// Clients send either a bare JSON string or {"keyword": "..."}.
type GenerateBudgetRequest struct {
	Keyword string `json:"keyword"`
}

func (r *GenerateBudgetRequest) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.Keyword)
	}

	type plain GenerateBudgetRequest
	var body plain
	if err := json.Unmarshal(data, &body); err != nil {
		return fmt.Errorf("keyword must be a string or an object with a keyword field: %w", err)
	}
	r.Keyword = body.Keyword
	return nil
}

// Response DTOs

// DeletedBudgetMessage formats the confirmation returned after a delete
func DeletedBudgetMessage(period models.Period) string {
	return fmt.Sprintf("Budget with month: %d and year: %d was successfully deleted", period.Month, period.Year)
}
