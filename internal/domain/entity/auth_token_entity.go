package entity

import (
	"time"
)

// AuthToken is the per-(user, client) bearer token record. Only a SHA-256
// digest of the token value is stored; the plaintext leaves the process once,
// in the sign-in response headers. A user holds at most one active token per
// client, and issuing a new one supersedes the previous row.
type AuthToken struct {
	UserID    string
	Client    string
	Digest    []byte
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry at the given time.
func (t *AuthToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
