package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lox/twentyone/internal/game"
)

// Prompter asks a person at a console whether to draw, and shows them their
// hand after each draw. It implements game.DecisionProvider and
// game.ResultPresenter.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles *Styles
}

// NewPrompter creates a prompter reading answers from in
func NewPrompter(in io.Reader, out io.Writer, styles *Styles) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
	}
}

// Decide implements game.DecisionProvider. It blocks until a line is read.
// Only "y" or "yes" draws; anything else, including end of input, stands.
func (p *Prompter) Decide(state game.PlayerState) bool {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.styles.Player.Render(fmt.Sprintf("Your turn: %s", state.Name)))
	fmt.Fprintln(p.out, "Hand: "+p.styles.Hand.Render(state.Hand))
	fmt.Fprint(p.out, p.styles.Prompt.Render("Draw another card? (y/n) > "))

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return false
	}
	return ParseAnswer(line)
}

// Present implements game.ResultPresenter
func (p *Prompter) Present(state game.PlayerState) {
	fmt.Fprintln(p.out, p.styles.Hand.Render(state.Hand))
}

// ParseAnswer reports whether s is an affirmative answer
func ParseAnswer(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
