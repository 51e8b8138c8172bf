package game

import (
	"fmt"
	"strings"
)

// FormattingOptions controls how events are rendered
type FormattingOptions struct {
	NameWidth  int  // Pad names in the status table to this width (default 10)
	HideHands  bool // Omit full hands from draw lines, showing only the card
	ShowTotals bool // Include final totals in the game end summary
}

// EventFormatter renders game events as plain text. Styling is left to the
// caller.
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	if opts.NameWidth <= 0 {
		opts.NameWidth = 10
	}
	return &EventFormatter{opts: opts}
}

// Format renders any known event, or "" for unknown types
func (ef *EventFormatter) Format(event GameEvent) string {
	switch e := event.(type) {
	case GameStartEvent:
		return ef.FormatGameStart(e)
	case TurnStartEvent:
		return ef.FormatTurnStart(e)
	case PlayerDrawEvent:
		return ef.FormatPlayerDraw(e)
	case PlayerStandEvent:
		return ef.FormatPlayerStand(e)
	case PlayerBustEvent:
		return ef.FormatPlayerBust(e)
	case GameEndEvent:
		return ef.FormatGameEnd(e)
	default:
		return ""
	}
}

// FormatGameStart lists the seated players and their opening hands
func (ef *EventFormatter) FormatGameStart(event GameStartEvent) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Game %s: %d players", event.GameID, len(event.Players))
	for _, p := range event.Players {
		fmt.Fprintf(&sb, "\n  %s (%s): %s", p.Name, p.Kind, p.Hand)
	}
	return sb.String()
}

// FormatTurnStart renders the turn banner and status table
func (ef *EventFormatter) FormatTurnStart(event TurnStartEvent) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, " ===== Turn %d =====", event.Turn)
	for _, s := range event.Statuses {
		status := "playing"
		if s.Finished {
			status = "done"
		}
		fmt.Fprintf(&sb, "\n%-*s  %s", ef.opts.NameWidth, s.Name, status)
	}
	return sb.String()
}

// FormatPlayerDraw renders a draw, e.g. "com1 draws [7]: [5] [4] [7] = 16"
func (ef *EventFormatter) FormatPlayerDraw(event PlayerDrawEvent) string {
	if ef.opts.HideHands {
		return fmt.Sprintf("%s draws %s", event.Player.Name, event.Card)
	}
	return fmt.Sprintf("%s draws %s: %s", event.Player.Name, event.Card, event.Player.Hand)
}

// FormatPlayerStand renders a player standing
func (ef *EventFormatter) FormatPlayerStand(event PlayerStandEvent) string {
	return fmt.Sprintf("%s stands on %d", event.Player.Name, event.Player.Total)
}

// FormatPlayerBust renders a bust
func (ef *EventFormatter) FormatPlayerBust(event PlayerBustEvent) string {
	return fmt.Sprintf("%s busts with %d!", event.Player.Name, event.Player.Total)
}

// FormatGameEnd renders the winner list
func (ef *EventFormatter) FormatGameEnd(event GameEndEvent) string {
	var sb strings.Builder
	if len(event.Winners) == 0 {
		sb.WriteString("No winners: every player busted")
	} else {
		sb.WriteString("Winners!")
		for _, name := range event.Winners {
			fmt.Fprintf(&sb, "\n - %s", name)
		}
	}

	if ef.opts.ShowTotals {
		sb.WriteString("\nFinal hands:")
		for _, s := range event.Standings {
			note := ""
			if s.Busted {
				note = " (bust)"
			}
			fmt.Fprintf(&sb, "\n  %-*s  %s%s", ef.opts.NameWidth, s.Name, s.Hand, note)
		}
	}
	return sb.String()
}
