package cards

import "fmt"

const (
	// MinValue is the lowest value a drawn card can carry
	MinValue = 1
	// MaxValue is the highest value a drawn card can carry
	MaxValue = 10
)

// Source is the randomness a card draw consumes. *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

// Card is an immutable drawable unit with an integer value
type Card struct {
	value int
}

// NewCard creates a card with the given value
func NewCard(value int) Card {
	return Card{value: value}
}

// RandomCard draws a card uniformly from [MinValue, MaxValue]
func RandomCard(src Source) Card {
	return Card{value: MinValue + src.IntN(MaxValue-MinValue+1)}
}

// Value returns the card's value
func (c Card) Value() int {
	return c.value
}

// String renders the card as a bracketed integer, e.g. "[7]"
func (c Card) String() string {
	return fmt.Sprintf("[%d]", c.value)
}
