package crypto

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

const (
	tokenChars = "0123456789abcdef"

	// TokenLength is the number of hex characters in a login token.
	TokenLength = 32
)

// IssueToken returns an opaque bearer token of TokenLength lowercase hex
// characters. Tokens are not stored anywhere.
func IssueToken() (string, error) {
	result := make([]byte, TokenLength)
	for i := range result {
		ch, err := randChar(tokenChars)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}
	return string(result), nil
}

// NewAPIKey returns a fresh random API key.
func NewAPIKey() string {
	return uuid.NewString()
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
