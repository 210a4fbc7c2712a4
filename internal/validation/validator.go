package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxAmountScale is the number of decimal places a stored amount may carry
const MaxAmountScale = 2

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimals are validated through their canonical string form
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("budget_amount", validateBudgetAmount)
	_ = v.RegisterValidation("budget_amount_signed", validateSignedAmount)
	_ = v.RegisterValidation("category", validateCategory)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the configured rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// Custom validation functions

// validateBudgetAmount accepts a non-negative amount with at most two decimal places
func validateBudgetAmount(fl validator.FieldLevel) bool {
	amount, ok := parseAmount(fl)
	if !ok {
		return false
	}
	return !amount.IsNegative()
}

// validateSignedAmount accepts a positive or negative amount with at most two decimal places
func validateSignedAmount(fl validator.FieldLevel) bool {
	_, ok := parseAmount(fl)
	return ok
}

func parseAmount(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if fl.Field().Kind() != reflect.String {
		return decimal.Decimal{}, false
	}

	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Decimal{}, false
	}

	if amount.Exponent() < -MaxAmountScale {
		return decimal.Decimal{}, false
	}

	return amount, true
}

// validateCategory accepts a non-blank label of at most 100 characters
func validateCategory(fl validator.FieldLevel) bool {
	category := strings.TrimSpace(fl.Field().String())
	return category != "" && len(category) <= 100
}
