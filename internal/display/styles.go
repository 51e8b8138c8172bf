package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for console output
type Styles struct {
	Header lipgloss.Style // turn banner
	Info   lipgloss.Style
	Done   lipgloss.Style
	Action lipgloss.Style
	Bust   lipgloss.Style
	Winner lipgloss.Style
	Prompt lipgloss.Style
	Player lipgloss.Style
	Hand   lipgloss.Style
}

// NewStyles creates styles rendering to out. With color false every style
// renders plain text.
func NewStyles(out io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Done: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Action: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Bust: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Player: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Hand: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
	}
}
