package dto

import "github.com/golang-jwt/jwt/v5"

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
