package cards

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lox/twentyone/internal/randutil"
	"github.com/stretchr/testify/assert"
)

func TestHandTotal(t *testing.T) {
	t.Run("empty hand", func(t *testing.T) {
		h := NewHand()
		assert.Equal(t, 0, h.Total())
		assert.Equal(t, "= 0", h.String())
	})

	t.Run("initial cards", func(t *testing.T) {
		h := NewHand(NewCard(5), NewCard(4))
		assert.Equal(t, 9, h.Total())
		assert.Equal(t, 2, h.Len())
		assert.Equal(t, "[5] [4] = 9", h.String())
	})

	t.Run("add card increases total by its value", func(t *testing.T) {
		rng := randutil.New(7)
		h := NewHand(NewCard(2), NewCard(3))

		for i := 0; i < 50; i++ {
			before := h.Total()
			c := RandomCard(rng)
			h.AddCard(c)
			assert.Equal(t, before+c.Value(), h.Total())
		}
	})
}

func TestHandTotalMatchesCards(t *testing.T) {
	rng := randutil.New(99)
	h := NewHand()

	for i := 0; i < 20; i++ {
		h.AddCard(RandomCard(rng))

		sum := 0
		for _, c := range h.Cards() {
			sum += c.Value()
		}
		assert.Equal(t, sum, h.Total())
		assert.True(t, strings.HasSuffix(h.String(), fmt.Sprintf("= %d", h.Total())),
			"hand display %q must end with its total", h.String())
	}
}

func TestHandPreservesOrder(t *testing.T) {
	h := NewHand(NewCard(6), NewCard(6))
	h.AddCard(NewCard(1))
	h.AddCard(NewCard(10))

	assert.Equal(t, []Card{NewCard(6), NewCard(6), NewCard(1), NewCard(10)}, h.Cards())
	assert.Equal(t, "[6] [6] [1] [10] = 23", h.String())
}

func TestHandCardsIsCopy(t *testing.T) {
	h := NewHand(NewCard(3))
	cards := h.Cards()
	cards[0] = NewCard(9)

	assert.Equal(t, 3, h.Total())
}
