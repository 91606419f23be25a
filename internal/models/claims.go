package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the bearer-token claims issued by the platform auth service.
// This backend only validates them; it never issues tokens.
type UserClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (c *UserClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
