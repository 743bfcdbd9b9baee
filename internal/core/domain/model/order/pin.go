package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

// NewSecurityPin generates the 4-digit hand-off pin for an order entering the
// Ready status. The value is drawn from crypto/rand so it cannot be predicted
// from the order id or timestamp, and is zero-padded ("0042" is valid).
func NewSecurityPin() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("generating security pin: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

// IsValidSecurityPin reports whether s is a well-formed 4-digit pin.
func IsValidSecurityPin(s string) bool {
	return pinPattern.MatchString(s)
}
