package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Digits is the fixed width of a verification code.
const Digits = 6

// Generator produces a one-time verification code. Injected into the
// verification service so tests can supply deterministic codes.
type Generator interface {
	Generate() (string, error)
}

// CryptoGenerator draws codes uniformly from [000000, 999999] using
// crypto/rand. Zero-padding is preserved by keeping the code a string.
type CryptoGenerator struct{}

func NewGenerator() CryptoGenerator { return CryptoGenerator{} }

func (CryptoGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%0*d", Digits, n.Int64()), nil
}
