package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/view"
)

// Styles holds the shell's lipgloss styles.
type Styles struct {
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Heading   lipgloss.Style
	Metric    lipgloss.Style
	Key       lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Body      lipgloss.Style
	Notices   map[view.Tone]lipgloss.Style
}

// DefaultStyles returns the ocean palette used by the shell.
func DefaultStyles() Styles {
	return Styles{
		Tab: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#94a3b8")),
		ActiveTab: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("#f8fafc")).
			Background(lipgloss.Color("#0e7490")),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0ea5e9")),
		Subtitle: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#64748b")),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Underline(true),
		Metric: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#10b981")).
			Padding(0, 1).
			MarginRight(1),
		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f59e0b")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22c55e")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#475569")),
		Body: lipgloss.NewStyle().
			Padding(1, 2),
		Notices: map[view.Tone]lipgloss.Style{
			view.ToneNeutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("#cbd5e1")),
			view.TonePositive: lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
			view.ToneWarning: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1c1917")).
				Background(lipgloss.Color("#fbbf24")).
				Padding(0, 1),
			view.ToneCritical: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fef2f2")).
				Background(lipgloss.Color("#b91c1c")).
				Padding(0, 1),
		},
	}
}
