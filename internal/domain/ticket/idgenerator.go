package ticket

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"novita/internal/shared/constants"
)

// IDGenerator produces candidate public ticket identifiers. Uniqueness is
// enforced by the caller against the repository; on collision a fresh
// candidate is drawn.
type IDGenerator interface {
	Generate() (string, error)
}

type randomIDGenerator struct{}

func NewIDGenerator() IDGenerator {
	return &randomIDGenerator{}
}

// Generate returns an identifier of the form "TK" followed by 8 random
// decimal digits, e.g. "TK04729163".
func (g *randomIDGenerator) Generate() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < constants.TicketIDDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate ticket identifier: %w", err)
	}

	return fmt.Sprintf("%s%0*d", constants.TicketIDPrefix, constants.TicketIDDigits, n), nil
}
