package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// ResetCodeTTL is how long an issued password reset code stays valid.
const ResetCodeTTL = 10 * time.Minute

// GenerateResetCode generates a secure random 6-digit password reset code.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
