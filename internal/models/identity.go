package models

import "errors"

var ErrMissingIdentity = errors.New("caller identity is missing")

// Identity is the authenticated caller every budget query is scoped to
type Identity struct {
	Email string
}

func (i Identity) Validate() error {
	if i.Email == "" {
		return ErrMissingIdentity
	}
	return nil
}
