package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

var allCodes = []ErrorCode{
	AuthMissingToken,
	AuthExpiredToken,
	AuthInvalidTokenFormat,
	AuthInsufficientPermission,
	ValidationGeneral,
	ValidationRequiredField,
	ValidationInvalidFormat,
	ValidationOutOfRange,
	ValidationInvalidPeriod,
	BudgetNotFound,
	BudgetAlreadyExists,
	BudgetNoneFound,
	CategoryBudgetNotFound,
	RolloverInvalidKeyword,
	RolloverFailed,
	SystemInternalError,
	SystemDatabaseError,
	SystemServiceUnavailable,
	SystemConfigurationError,
	SystemUnexpectedError,
	SystemRateLimitExceeded,
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Missing Token",
			code:     AuthMissingToken,
			expected: "Authorization token is required",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Budget None Found",
			code:     BudgetNoneFound,
			expected: "No budgets have been found.",
		},
		{
			name:     "Rollover Invalid Keyword",
			code:     RolloverInvalidKeyword,
			expected: "Incorrect keyword!",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	for _, code := range allCodes {
		s.Run(string(code), func() {
			s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
		})
	}
}

func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	invalidCodes := []ErrorCode{
		"INVALID_001",
		"UNKNOWN_CODE",
		"",
		"BUDGET_999",
	}

	for _, code := range invalidCodes {
		s.Run(string(code), func() {
			s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
		})
	}
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
	s.Len(seen, len(errorMessages))
}

// TestErrorCodeConstants_Format ensures all error codes follow naming convention
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	testCases := []struct {
		prefix string
		codes  []ErrorCode
	}{
		{prefix: "AUTH_", codes: []ErrorCode{AuthMissingToken, AuthExpiredToken, AuthInvalidTokenFormat, AuthInsufficientPermission}},
		{prefix: "VALIDATION_", codes: []ErrorCode{ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat, ValidationOutOfRange, ValidationInvalidPeriod}},
		{prefix: "BUDGET_", codes: []ErrorCode{BudgetNotFound, BudgetAlreadyExists, BudgetNoneFound}},
		{prefix: "CATEGORY_BUDGET_", codes: []ErrorCode{CategoryBudgetNotFound}},
		{prefix: "ROLLOVER_", codes: []ErrorCode{RolloverInvalidKeyword, RolloverFailed}},
		{prefix: "SYSTEM_", codes: []ErrorCode{SystemInternalError, SystemDatabaseError, SystemServiceUnavailable, SystemConfigurationError, SystemUnexpectedError, SystemRateLimitExceeded}},
	}

	for _, tc := range testCases {
		s.Run(tc.prefix, func() {
			for _, code := range tc.codes {
				s.True(strings.HasPrefix(string(code), tc.prefix), "Error code %s should start with %s", code, tc.prefix)
			}
		})
	}
}

// TestAllErrorCodesHaveMessages ensures every error code has a message
func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allCodes {
		s.Run(string(code), func() {
			message := GetErrorMessage(code)
			s.NotEmpty(message, "Error code %s should have a message", code)
			s.NotEqual("An error occurred", message, "Error code %s should have a specific message", code)
		})
	}
}
