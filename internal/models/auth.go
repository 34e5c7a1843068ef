package models

import "github.com/golang-jwt/jwt/v5"

// RoleClaims is the JWT payload accepted when tokens are verified.
type RoleClaims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}
