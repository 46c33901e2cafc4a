// Package runid generates identifiers for showdown runs: UUIDv7 values encoded
// as 26-character Crockford base32 strings, so they sort by creation time.
package runid

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded run ID.
const Length = 26

// Generator produces run IDs from a configurable entropy source.
type Generator struct {
	entropy io.Reader
}

// NewGenerator creates a generator reading randomness from entropy, or from
// crypto/rand when entropy is nil.
func NewGenerator(entropy io.Reader) *Generator {
	if entropy == nil {
		entropy = rand.Reader
	}
	return &Generator{entropy: entropy}
}

// Generate creates a new run ID.
func (g *Generator) Generate() (string, error) {
	id, err := uuid.NewV7FromReader(g.entropy)
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}
	return encode(id), nil
}

// encode packs the 128 UUID bits, preceded by two zero bits, into 26 groups
// of five bits.
func encode(id uuid.UUID) string {
	var sb strings.Builder
	sb.Grow(Length)

	var acc uint32
	nbits := 2 // the two leading zero pad bits
	for _, b := range id {
		acc = acc<<8 | uint32(b)
		nbits += 8
		for nbits >= 5 {
			nbits -= 5
			sb.WriteByte(alphabet[(acc>>nbits)&0x1f])
		}
	}
	return sb.String()
}

// Validate checks that id is 26 characters of the base32 alphabet and fits
// in 128 bits.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("run ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("run ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
