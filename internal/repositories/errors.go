package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound         = errors.New("budget not found")
	ErrBudgetAlreadyExists    = errors.New("budget already exists for this period")
	ErrCategoryBudgetNotFound = errors.New("category budget not found")
)

// isDuplicateKeyError detects unique index violations across postgres and sqlite
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
