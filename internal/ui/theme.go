package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + checkbox symbols.
// All renderers pull their styles from here.
type Theme struct {
	Title    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Pending  lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Help     lipgloss.Style
	Border   lipgloss.Style

	BoxUnchecked, BoxChecked string
}

// ByName returns the theme for name; unknown names get classic.
func ByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Muted:    lipgloss.NewStyle().Faint(true),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:     lipgloss.NewStyle().Faint(true),
			Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("13")).Padding(0, 1),

			BoxUnchecked: "◻", BoxChecked: "◼",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Title:    plain,
			Accent:   plain,
			Success:  plain,
			Pending:  plain,
			Muted:    plain,
			Selected: plain.Bold(true),
			Done:     plain.Strikethrough(true),
			Help:     plain,
			Border:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),

			BoxUnchecked: "[ ]", BoxChecked: "[x]",
		}
	default: // classic
		return Theme{
			Title:    lipgloss.NewStyle().Bold(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Muted:    lipgloss.NewStyle().Faint(true),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:     lipgloss.NewStyle().Faint(true),
			Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),

			BoxUnchecked: "☐", BoxChecked: "☑",
		}
	}
}
