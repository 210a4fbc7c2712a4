package handlers

import (
	"errors"

	"budget-tracker/internal/models"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = errors.New("unauthorized")

// UserEmailContextKey is where the auth middleware stores the caller's email
const UserEmailContextKey = "user_email"

// getIdentityFromContext resolves the authenticated caller.
// Returns ErrUnauthorized if the email is missing or not a string.
func getIdentityFromContext(c echo.Context) (models.Identity, error) {
	email, ok := c.Get(UserEmailContextKey).(string)
	if !ok || email == "" {
		return models.Identity{}, ErrUnauthorized
	}

	return models.Identity{Email: email}, nil
}

// getPeriodFromQuery reads the required month and year query parameters
func getPeriodFromQuery(c echo.Context) (models.Period, error) {
	var month, year int
	err := echo.QueryParamsBinder(c).
		MustInt("month", &month).
		MustInt("year", &year).
		BindError()
	if err != nil {
		return models.Period{}, err
	}

	return models.NewPeriod(month, year)
}
