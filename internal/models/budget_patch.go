package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Patchable budget columns
const (
	FieldValue = "value"
	FieldSpent = "spent"
	FieldMonth = "month"
	FieldYear  = "year"
)

// BudgetPatch is the set of fields present in a partial budget update.
// Fields that were never set are not written.
type BudgetPatch struct {
	fields map[string]interface{}
}

func NewBudgetPatch() *BudgetPatch {
	return &BudgetPatch{fields: make(map[string]interface{})}
}

func (p *BudgetPatch) SetValue(v decimal.Decimal) *BudgetPatch {
	p.set(FieldValue, v)
	return p
}

func (p *BudgetPatch) SetSpent(v decimal.Decimal) *BudgetPatch {
	p.set(FieldSpent, v)
	return p
}

func (p *BudgetPatch) SetMonth(month int) *BudgetPatch {
	p.set(FieldMonth, month)
	return p
}

func (p *BudgetPatch) SetYear(year int) *BudgetPatch {
	p.set(FieldYear, year)
	return p
}

func (p *BudgetPatch) set(field string, value interface{}) {
	if p.fields == nil {
		p.fields = make(map[string]interface{})
	}
	p.fields[field] = value
}

// Has reports whether field is present
func (p *BudgetPatch) Has(field string) bool {
	if p == nil {
		return false
	}
	_, ok := p.fields[field]
	return ok
}

func (p *BudgetPatch) IsEmpty() bool {
	return p == nil || len(p.fields) == 0
}

// Fields returns the present field names in a stable order
func (p *BudgetPatch) Fields() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.fields))
	for name := range p.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Target returns the period the budget will occupy once the patch is applied to current
func (p *BudgetPatch) Target(current Period) Period {
	target := current
	if p.IsEmpty() {
		return target
	}
	if month, ok := p.fields[FieldMonth].(int); ok {
		target.Month = month
	}
	if year, ok := p.fields[FieldYear].(int); ok {
		target.Year = year
	}
	return target
}

// Validate checks the present fields only
func (p *BudgetPatch) Validate(current Period) error {
	if p.IsEmpty() {
		return nil
	}
	if v, ok := p.fields[FieldValue].(decimal.Decimal); ok && v.IsNegative() {
		return ErrNegativeValue
	}
	return p.Target(current).Validate()
}

// Updates returns the column map to write, always re-attaching the owner's email
func (p *BudgetPatch) Updates(owner Identity) map[string]interface{} {
	updates := make(map[string]interface{}, len(p.fields)+1)
	if p != nil {
		for k, v := range p.fields {
			updates[k] = v
		}
	}
	updates["email"] = owner.Email
	return updates
}
