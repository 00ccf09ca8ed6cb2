package types

import "time"

// Credential is the persisted bearer token and role pair identifying a
// logged-in session. Field names are the canonical storage keys; the
// backend's own response field names are reused on disk.
type Credential struct {
	AccessToken string `json:"access_token"`
	Role        Role   `json:"role"`
}

// TokenClaims is the display-only view of the access token payload.
// The client holds no verification key, so these values are informational
// and never used for authorisation decisions.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim is in the past.
func (c TokenClaims) Expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}
