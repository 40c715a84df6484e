// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"math/big"
)

func GenerateRandomString(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

// GenerateOrderReference produces the reference stored alongside
// non-gateway payments (UPI screenshot and COD orders).
func GenerateOrderReference() (string, error) {
	randomPart, err := GenerateRandomString(12)
	if err != nil {
		return "", err
	}
	return "RR-" + randomPart, nil
}
