package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/quadrant/internal/quadrant"
)

// Theme bundles palette, symbols and box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent         lipgloss.Style
	Success, Error, Selected     lipgloss.Style
	Quadrants                    map[quadrant.Quadrant]lipgloss.Style
	Border                       lipgloss.Border
	BorderColor                  lipgloss.TerminalColor
	AxisH, AxisV, Divider, Cross string
	Crowded, SymOK, SymErr       string
}

var current = build("classic")

// SetTheme switches the active theme. Unknown names fall back to classic.
func SetTheme(name string) {
	current = build(name)
}

// Current returns the active theme.
func Current() Theme { return current }

// QuadrantStyle returns the style used for points and badges in q.
func (t Theme) QuadrantStyle(q quadrant.Quadrant) lipgloss.Style {
	if s, ok := t.Quadrants[q]; ok {
		return s
	}
	return t.Muted
}

func build(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:     "neon",
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
			Quadrants: map[quadrant.Quadrant]lipgloss.Style{
				quadrant.HighValueLowComplexity:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
				quadrant.HighValueHighComplexity: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
				quadrant.LowValueLowComplexity:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
				quadrant.LowValueHighComplexity:  lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
			},
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("93"),
			AxisH:       "─",
			AxisV:       "│",
			Divider:     "┄",
			Cross:       "┼",
			Crowded:     "✱",
			SymOK:       "✔",
			SymErr:      "✖",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:     "mono",
			Title:    plain,
			Muted:    plain,
			Accent:   plain,
			Success:  plain,
			Error:    plain,
			Selected: plain,
			Quadrants: map[quadrant.Quadrant]lipgloss.Style{
				quadrant.HighValueLowComplexity:  plain,
				quadrant.HighValueHighComplexity: plain,
				quadrant.LowValueLowComplexity:   plain,
				quadrant.LowValueHighComplexity:  plain,
			},
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			AxisH:       "-",
			AxisV:       "|",
			Divider:     ".",
			Cross:       "+",
			Crowded:     "*",
			SymOK:       "ok",
			SymErr:      "error:",
		}
	default: // classic
		return Theme{
			Name:     "classic",
			Title:    lipgloss.NewStyle().Bold(true),
			Muted:    lipgloss.NewStyle().Faint(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Quadrants: map[quadrant.Quadrant]lipgloss.Style{
				quadrant.HighValueLowComplexity:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
				quadrant.HighValueHighComplexity: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
				quadrant.LowValueLowComplexity:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
				quadrant.LowValueHighComplexity:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			},
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			AxisH:       "─",
			AxisV:       "│",
			Divider:     "┄",
			Cross:       "┼",
			Crowded:     "✱",
			SymOK:       "✔",
			SymErr:      "✖",
		}
	}
}
