package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomToken returns a hex string of 2*n characters from n random
// bytes. Used for reset and refresh tokens.
func GenerateRandomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
