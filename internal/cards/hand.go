package cards

import (
	"fmt"
	"strings"
)

// Hand is an ordered collection of cards owned by one player.
// Cards are only ever appended; the total is computed on demand.
type Hand struct {
	cards []Card
}

// NewHand creates a hand holding the given cards in order
func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, 0, len(cards)+2)}
	h.cards = append(h.cards, cards...)
	return h
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(card Card) {
	h.cards = append(h.cards, card)
}

// Total returns the sum of all card values
func (h *Hand) Total() int {
	total := 0
	for _, c := range h.cards {
		total += c.Value()
	}
	return total
}

// Cards returns a copy of the cards in insertion order
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// String renders the cards followed by the total, e.g. "[5] [4] = 9"
func (h *Hand) String() string {
	parts := make([]string, 0, len(h.cards)+1)
	for _, c := range h.cards {
		parts = append(parts, c.String())
	}
	parts = append(parts, fmt.Sprintf("= %d", h.Total()))
	return strings.Join(parts, " ")
}
