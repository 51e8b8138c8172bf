package game

import (
	"testing"

	"github.com/lox/twentyone/internal/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomatedAgentThreshold(t *testing.T) {
	agent := AutomatedAgent{}

	for total := 0; total <= 31; total++ {
		want := total <= DrawThreshold
		got := agent.DecideDraw(PlayerState{Total: total})
		assert.Equal(t, want, got, "total %d", total)
	}
}

func TestAutomatedPlayerDecisionFollowsHand(t *testing.T) {
	tests := []struct {
		name  string
		cards []int
		draw  bool
	}{
		{"low total draws", []int{5, 4}, true},
		{"sixteen draws", []int{10, 6}, true},
		{"seventeen stands", []int{10, 7}, false},
		{"twenty stands", []int{10, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewAutomatedPlayer("com1", hand(tt.cards...))
			assert.Equal(t, tt.draw, p.DecideDraw())
			// deterministic for the same hand
			assert.Equal(t, tt.draw, p.DecideDraw())
		})
	}
}

func TestInteractiveAgent(t *testing.T) {
	t.Run("delegates to provider and presenter", func(t *testing.T) {
		provider := &scriptedProvider{answers: []bool{true, false}}
		presenter := &presenterLog{}
		p := NewInteractivePlayer("p1", hand(5, 4), provider, presenter)

		assert.True(t, p.DecideDraw())
		p.ShowDrawResult()
		assert.False(t, p.DecideDraw())

		require.Len(t, provider.asked, 2)
		assert.Equal(t, "p1", provider.asked[0].Name)
		assert.Equal(t, "[5] [4] = 9", provider.asked[0].Hand)
		require.Len(t, presenter.shown, 1)
		assert.Equal(t, 9, presenter.shown[0].Total)
	})

	t.Run("nil provider declines", func(t *testing.T) {
		p := NewInteractivePlayer("p1", hand(2, 2), nil, nil)
		assert.False(t, p.DecideDraw())
		assert.NotPanics(t, p.ShowDrawResult)
	})

	t.Run("func adapters", func(t *testing.T) {
		var shown string
		p := NewInteractivePlayer("p1", hand(3, 3),
			DecisionProviderFunc(func(s PlayerState) bool { return s.Total < 10 }),
			ResultPresenterFunc(func(s PlayerState) { shown = s.Hand }))

		assert.True(t, p.DecideDraw())
		p.ShowDrawResult()
		assert.Equal(t, "[3] [3] = 6", shown)
	})
}

func TestPlayerDrawRandom(t *testing.T) {
	p := NewAutomatedPlayer("com1", hand(5, 4))
	src := cards.NewStackedSource(7)

	card := p.DrawRandom(src)

	assert.Equal(t, 7, card.Value())
	assert.Equal(t, 16, p.Hand().Total())
	assert.Equal(t, 3, p.Hand().Len())
}

func TestPlayerFinishedIsIrreversible(t *testing.T) {
	p := NewAutomatedPlayer("com1", hand(5, 4))
	assert.False(t, p.Finished())

	p.MarkFinished()
	assert.True(t, p.Finished())

	p.MarkFinished()
	assert.True(t, p.Finished(), "MarkFinished is idempotent")

	p.DrawRandom(cards.NewStackedSource(1))
	assert.True(t, p.Finished(), "drawing never reopens a player")
}

func TestPlayerScore(t *testing.T) {
	tests := []struct {
		name   string
		cards  []int
		score  int
		scored bool
	}{
		{"initial hand", []int{5, 4}, 9, true},
		{"exactly twenty one", []int{10, 10, 1}, 21, true},
		{"twenty two busts", []int{10, 10, 2}, 0, false},
		{"twenty three busts", []int{6, 6, 11}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewAutomatedPlayer("com1", hand(tt.cards...))
			score, ok := p.Score()
			assert.Equal(t, tt.scored, ok)
			assert.Equal(t, tt.score, score)
			assert.Equal(t, !tt.scored, p.Busted())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "automated", Automated.String())
	assert.Equal(t, "interactive", Interactive.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
