package helpers

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// MintToken returns a new bearer token value built from n bytes of
// crypto/rand output, base64url-encoded without padding.
func MintToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// TokenDigest returns the SHA-256 digest under which a token value is stored.
// The plaintext token never reaches the database.
func TokenDigest(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}

// SecureCompareDigest compares a stored digest against the digest of a
// presented token in constant time.
func SecureCompareDigest(stored []byte, token string) bool {
	presented := TokenDigest(token)
	return subtle.ConstantTimeCompare(stored, presented) == 1
}
