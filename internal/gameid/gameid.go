// Package gameid generates sortable identifiers for games: a UUIDv7 encoded
// as 26 characters of Crockford base32.
package gameid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32 alphabet, lower case
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in a game ID
const Length = 26

// Generator creates game IDs from a source of random bytes
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator reading randomness from r.
// A nil reader uses crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate creates a new game ID
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new game ID. It panics if the random source fails.
func (g *Generator) Generate() string {
	var (
		id  uuid.UUID
		err error
	)
	if g.rand != nil {
		id, err = uuid.NewV7FromReader(g.rand)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		panic("failed to generate game id: " + err.Error())
	}
	return Encode(id)
}

// Encode renders a UUID as 26 base32 characters. The 128 bits are treated as
// a 130-bit number with two leading zero bits, so the first character is
// always 0-7.
func Encode(id uuid.UUID) string {
	out := make([]byte, Length)
	var acc uint64
	bits := 2 // leading padding bits
	pos := 0
	for _, b := range id {
		acc = acc<<8 | uint64(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out[pos] = alphabet[(acc>>uint(bits))&0x1f]
			pos++
		}
	}
	return string(out)
}

// Validate checks that id is 26 base32 characters starting with 0-7
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
