package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims are the claims carried by access tokens presented to the budget API.
// Email identifies the budget owner.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id,omitempty"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
}
