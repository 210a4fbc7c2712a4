package services

import (
	"crypto/subtle"

	"budget-tracker/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// keywordVerifier guards the rollover with a shared secret.
// A configured bcrypt hash takes precedence over the plain keyword.
type keywordVerifier struct {
	keyword []byte
	hash    []byte
}

func NewKeywordVerifier(cfg *config.RolloverConfig) KeywordVerifierInterface {
	return &keywordVerifier{
		keyword: []byte(cfg.Keyword),
		hash:    []byte(cfg.KeywordHash),
	}
}

func (v *keywordVerifier) Verify(keyword string) bool {
	if len(v.hash) > 0 {
		return bcrypt.CompareHashAndPassword(v.hash, []byte(keyword)) == nil
	}

	if len(v.keyword) == 0 {
		return false
	}

	return subtle.ConstantTimeCompare(v.keyword, []byte(keyword)) == 1
}
