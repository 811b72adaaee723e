package models

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the claim set carried by tokens this service issues.
// Only the email identity is embedded - never the role. Roles are
// re-read from the user store on every protected request so that a
// role change takes effect immediately, not at token expiry.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GetEmail returns the email identity the token is bound to.
// Falls back to the subject claim for tokens that omit the email field.
func (c *AccessClaims) GetEmail() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}
