package services

import (
	"testing"

	"budget-tracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestKeywordVerifier_PlainKeyword(t *testing.T) {
	verifier := NewKeywordVerifier(&config.RolloverConfig{Keyword: config.DefaultRolloverKeyword})

	assert.True(t, verifier.Verify("verySecurePassword"))
	assert.False(t, verifier.Verify("verysecurepassword"))
	assert.False(t, verifier.Verify("verySecurePassword "))
	assert.False(t, verifier.Verify(""))
}

func TestKeywordVerifier_HashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rotated-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	verifier := NewKeywordVerifier(&config.RolloverConfig{
		Keyword:     config.DefaultRolloverKeyword,
		KeywordHash: string(hash),
	})

	assert.True(t, verifier.Verify("rotated-secret"))
	assert.False(t, verifier.Verify(config.DefaultRolloverKeyword))
}

func TestKeywordVerifier_NothingConfigured(t *testing.T) {
	verifier := NewKeywordVerifier(&config.RolloverConfig{})

	assert.False(t, verifier.Verify(""))
	assert.False(t, verifier.Verify("anything"))
}
