package game

import (
	"testing"
	"time"

	"github.com/lox/twentyone/internal/cards"
)

func TestEventFormatter(t *testing.T) {
	now := time.Now()
	drawn := PlayerState{Name: "com1", Kind: Automated, Hand: "[5] [4] [7] = 16", Total: 16}

	tests := []struct {
		name     string
		opts     FormattingOptions
		event    GameEvent
		expected string
	}{
		{
			name: "turn start status table",
			opts: FormattingOptions{},
			event: NewTurnStartEvent("g", 2, []PlayerStatus{
				{Name: "p1", Finished: false},
				{Name: "com1", Finished: true},
			}, now),
			expected: " ===== Turn 2 =====\np1          playing\ncom1        done",
		},
		{
			name:     "draw with hand",
			opts:     FormattingOptions{},
			event:    NewPlayerDrawEvent(drawn, cards.NewCard(7), now),
			expected: "com1 draws [7]: [5] [4] [7] = 16",
		},
		{
			name:     "draw without hand",
			opts:     FormattingOptions{HideHands: true},
			event:    NewPlayerDrawEvent(drawn, cards.NewCard(7), now),
			expected: "com1 draws [7]",
		},
		{
			name:     "stand",
			opts:     FormattingOptions{},
			event:    NewPlayerStandEvent(PlayerState{Name: "p1", Total: 18}, now),
			expected: "p1 stands on 18",
		},
		{
			name:     "bust",
			opts:     FormattingOptions{},
			event:    NewPlayerBustEvent(PlayerState{Name: "com2", Total: 23}, now),
			expected: "com2 busts with 23!",
		},
		{
			name:     "winners",
			opts:     FormattingOptions{},
			event:    NewGameEndEvent("g", 3, []string{"p1", "com1"}, nil, now),
			expected: "Winners!\n - p1\n - com1",
		},
		{
			name:     "no winners",
			opts:     FormattingOptions{},
			event:    NewGameEndEvent("g", 3, []string{}, nil, now),
			expected: "No winners: every player busted",
		},
		{
			name: "winners with totals",
			opts: FormattingOptions{ShowTotals: true, NameWidth: 4},
			event: NewGameEndEvent("g", 3, []string{"p1"}, []Standing{
				{Name: "p1", Hand: "[10] [9] = 19", Total: 19, Winner: true},
				{Name: "com1", Hand: "[10] [6] [8] = 24", Total: 24, Busted: true},
			}, now),
			expected: "Winners!\n - p1\nFinal hands:\n  p1    [10] [9] = 19\n  com1  [10] [6] [8] = 24 (bust)",
		},
		{
			name: "game start",
			opts: FormattingOptions{},
			event: NewGameStartEvent("abc", []PlayerState{
				{Name: "p1", Kind: Interactive, Hand: "[2] [3] = 5"},
			}, now),
			expected: "Game abc: 1 players\n  p1 (interactive): [2] [3] = 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewEventFormatter(tt.opts).Format(tt.event)
			if got != tt.expected {
				t.Errorf("Format() =\n%q\nwant\n%q", got, tt.expected)
			}
		})
	}
}
