package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinYear = 1970
	MaxYear = 9999
)

var ErrInvalidPeriod = errors.New("invalid period")

// Period identifies a calendar month of a given year
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// NewPeriod builds a period and validates its bounds
func NewPeriod(month, year int) (Period, error) {
	p := Period{Month: month, Year: year}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// PeriodOf returns the period containing t
func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidPeriod, p.Month)
	}
	if p.Year < MinYear || p.Year > MaxYear {
		return fmt.Errorf("%w: year %d out of range %d-%d", ErrInvalidPeriod, p.Year, MinYear, MaxYear)
	}
	return nil
}

// Next returns the following calendar month; December rolls over to January of the next year
func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Month: 1, Year: p.Year + 1}
	}
	return Period{Month: p.Month + 1, Year: p.Year}
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
