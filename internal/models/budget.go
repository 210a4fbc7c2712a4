package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired  = errors.New("email is required")
	ErrNegativeValue  = errors.New("value cannot be negative")
	ErrEmptyCategory  = errors.New("category is required")
	ErrCategoryLength = errors.New("category must be at most 100 characters")
)

// Budget is a user's total budget for one month
type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Email     string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_budgets_owner_period,priority:1" json:"email"`
	Month     int             `gorm:"not null;uniqueIndex:idx_budgets_owner_period,priority:2" json:"month"`
	Year      int             `gorm:"not null;uniqueIndex:idx_budgets_owner_period,priority:3" json:"year"`
	Value     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"value"`
	Spent     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"spent"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}

	return b.Validate()
}

func (b *Budget) Validate() error {
	if err := validateOwner(b.Email); err != nil {
		return err
	}

	if err := b.Period().Validate(); err != nil {
		return err
	}

	if b.Value.IsNegative() {
		return ErrNegativeValue
	}

	return nil
}

// Period returns the month the budget belongs to
func (b *Budget) Period() Period {
	return Period{Month: b.Month, Year: b.Year}
}

// AddSpent adjusts the accumulated spend by a signed amount
func (b *Budget) AddSpent(change decimal.Decimal) {
	b.Spent = b.Spent.Add(change)
	b.UpdatedAt = time.Now()
}

// CarryOver builds next period's budget from this one, with nothing spent yet
func (b *Budget) CarryOver(next Period) *Budget {
	return &Budget{
		Email: b.Email,
		Month: next.Month,
		Year:  next.Year,
		Value: b.Value,
		Spent: decimal.Zero,
	}
}

func (b *Budget) TableName() string {
	return "budgets"
}

// validateOwner only requires an owner: the email format belongs to the user directory
// and the token issuer, not to this service
func validateOwner(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	return nil
}
