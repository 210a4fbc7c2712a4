package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"budget-tracker/internal/config"
	"budget-tracker/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	privateKey     *rsa.PrivateKey
	publicKey      *rsa.PublicKey
	service        TokenServiceInterface
	issuer         string
	accessDuration time.Duration
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.accessDuration = 24 * time.Hour

	s.service = NewTokenService(&config.JWTConfig{
		PrivateKey:          s.privateKey,
		PublicKey:           s.publicKey,
		Issuer:              s.issuer,
		AccessTokenDuration: s.accessDuration,
	})
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) sign(claims models.CustomClaims, key *rsa.PrivateKey) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	s.Require().NoError(err)
	return token
}

func (s *TokenServiceTestSuite) claims(email string, expiresAt time.Time) models.CustomClaims {
	return models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email:     email,
		TokenType: TokenTypeAccess,
	}
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken() {
	token, expiresAt, err := s.service.GenerateAccessToken("test@example.com")
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(25 * time.Hour)))
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_MissingEmail() {
	_, _, err := s.service.GenerateAccessToken("")
	s.ErrorIs(err, ErrMissingEmailClaim)
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_VerifyOnlyService() {
	service := NewTokenService(&config.JWTConfig{PublicKey: s.publicKey, Issuer: s.issuer})

	_, _, err := service.GenerateAccessToken("test@example.com")
	s.ErrorIs(err, ErrSigningKeyMissing)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Success() {
	token, _, err := s.service.GenerateAccessToken("test@example.com")
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.NoError(err)
	s.Equal("test@example.com", claims.Email)
	s.Equal(TokenTypeAccess, claims.TokenType)
	s.Equal(s.issuer, claims.Issuer)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_EmptyToken() {
	_, err := s.service.ValidateAccessToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_MalformedToken() {
	_, err := s.service.ValidateAccessToken("not.a.jwt")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestExpiredToken() {
	token := s.sign(s.claims("test@example.com", time.Now().Add(-time.Hour)), s.privateKey)

	_, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestWrongIssuer() {
	claims := s.claims("test@example.com", time.Now().Add(time.Hour))
	claims.Issuer = "someone-else"

	_, err := s.service.ValidateAccessToken(s.sign(claims, s.privateKey))
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestWrongTokenType() {
	claims := s.claims("test@example.com", time.Now().Add(time.Hour))
	claims.TokenType = "refresh"

	_, err := s.service.ValidateAccessToken(s.sign(claims, s.privateKey))
	s.ErrorIs(err, ErrInvalidTokenType)
}

func (s *TokenServiceTestSuite) TestMissingEmailClaim() {
	_, err := s.service.ValidateAccessToken(s.sign(s.claims("", time.Now().Add(time.Hour)), s.privateKey))
	s.ErrorIs(err, ErrMissingEmailClaim)
}

func (s *TokenServiceTestSuite) TestDifferentKeys() {
	otherKey, _, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(s.sign(s.claims("test@example.com", time.Now().Add(time.Hour)), otherKey))
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestHMACTokenRejected() {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, s.claims("test@example.com", time.Now().Add(time.Hour))).
		SignedString([]byte("shared"))
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader_ValidBearer() {
	token, err := s.service.ExtractTokenFromHeader("Bearer abc.def.ghi")
	s.NoError(err)
	s.Equal("abc.def.ghi", token)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader_LowercaseBearer() {
	token, err := s.service.ExtractTokenFromHeader("bearer abc.def.ghi")
	s.NoError(err)
	s.Equal("abc.def.ghi", token)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader_Invalid() {
	for _, header := range []string{"", "Basic abc", "Bearer", "Bearer   "} {
		_, err := s.service.ExtractTokenFromHeader(header)
		s.ErrorIs(err, ErrInvalidAuthHeader, header)
	}
}

func BenchmarkTokenService_ValidateAccessToken(b *testing.B) {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	if err != nil {
		b.Fatal(err)
	}

	service := NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "bench",
		AccessTokenDuration: time.Hour,
	})

	token, _, err := service.GenerateAccessToken("bench@example.com")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = service.ValidateAccessToken(token)
	}
}
