package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims carried by staff access and refresh tokens.
// TokenVersion invalidates outstanding tokens on logout or password change.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	TokenVersion int    `json:"token_version"`
}
