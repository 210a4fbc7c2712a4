package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const MaxCategoryLength = 100

// CategoryBudget is a user's budget for one spending category within one month
type CategoryBudget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Email     string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_category_budgets_owner_period_category,priority:1" json:"email"`
	Month     int             `gorm:"not null;uniqueIndex:idx_category_budgets_owner_period_category,priority:2" json:"month"`
	Year      int             `gorm:"not null;uniqueIndex:idx_category_budgets_owner_period_category,priority:3" json:"year"`
	Category  string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_category_budgets_owner_period_category,priority:4" json:"category"`
	Value     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"value"`
	Spent     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"spent"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (cb *CategoryBudget) BeforeCreate(tx *gorm.DB) error {
	if cb.ID == uuid.Nil {
		cb.ID = uuid.New()
	}

	now := time.Now()
	if cb.CreatedAt.IsZero() {
		cb.CreatedAt = now
	}
	if cb.UpdatedAt.IsZero() {
		cb.UpdatedAt = cb.CreatedAt
	}

	return cb.Validate()
}

func (cb *CategoryBudget) Validate() error {
	if err := validateOwner(cb.Email); err != nil {
		return err
	}

	if err := cb.Period().Validate(); err != nil {
		return err
	}

	category := strings.TrimSpace(cb.Category)
	if category == "" {
		return ErrEmptyCategory
	}
	if len(category) > MaxCategoryLength {
		return ErrCategoryLength
	}

	if cb.Value.IsNegative() {
		return ErrNegativeValue
	}

	return nil
}

func (cb *CategoryBudget) Period() Period {
	return Period{Month: cb.Month, Year: cb.Year}
}

func (cb *CategoryBudget) AddSpent(change decimal.Decimal) {
	cb.Spent = cb.Spent.Add(change)
	cb.UpdatedAt = time.Now()
}

// CarryOver copies the category and planned value into the next period with nothing spent
func (cb *CategoryBudget) CarryOver(next Period) *CategoryBudget {
	return &CategoryBudget{
		Email:    cb.Email,
		Month:    next.Month,
		Year:     next.Year,
		Category: cb.Category,
		Value:    cb.Value,
		Spent:    decimal.Zero,
	}
}

func (cb *CategoryBudget) TableName() string {
	return "category_budgets"
}
