package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload issued on login.
type Claims struct {
	jwt.RegisteredClaims
	TokenID string   `json:"tid"`
	UserID  string   `json:"user_id"`
	Email   string   `json:"email"`
	Role    UserRole `json:"role"`
}
