package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/twentyone/internal/game"
)

// Reporter prints game progress to a writer. Subscribe it to a game's
// event bus.
type Reporter struct {
	out       io.Writer
	styles    *Styles
	formatter *game.EventFormatter
}

// NewReporter creates a reporter writing to out
func NewReporter(out io.Writer, styles *Styles, opts game.FormattingOptions) *Reporter {
	return &Reporter{
		out:       out,
		styles:    styles,
		formatter: game.NewEventFormatter(opts),
	}
}

// OnEvent implements game.EventSubscriber
func (r *Reporter) OnEvent(event game.GameEvent) {
	text := r.formatter.Format(event)
	if text == "" {
		return
	}

	head, body := r.stylesFor(event)
	lines := strings.Split(text, "\n")

	if _, ok := event.(game.TurnStartEvent); ok {
		fmt.Fprintln(r.out)
	}
	fmt.Fprintln(r.out, head.Render(lines[0]))
	// lines are styled one at a time; lipgloss pads multi-line blocks
	for _, line := range lines[1:] {
		fmt.Fprintln(r.out, body.Render(line))
	}
}

func (r *Reporter) stylesFor(event game.GameEvent) (head, body lipgloss.Style) {
	switch event.(type) {
	case game.TurnStartEvent:
		return r.styles.Header, r.styles.Info
	case game.PlayerDrawEvent:
		return r.styles.Action, r.styles.Action
	case game.PlayerStandEvent:
		return r.styles.Done, r.styles.Done
	case game.PlayerBustEvent:
		return r.styles.Bust, r.styles.Bust
	case game.GameEndEvent:
		return r.styles.Winner, r.styles.Info
	default:
		return r.styles.Info, r.styles.Info
	}
}
