package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("#8BC34A")
	muted   = lipgloss.Color("#6b7280")
	sale    = lipgloss.Color("#e53935")
	fresh   = lipgloss.Color("#2196F3")
	favored = lipgloss.Color("#FFC107")
)

// Styles groups the lipgloss styles the storefront renders with
type Styles struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Muted       lipgloss.Style
	Sale        lipgloss.Style
	New         lipgloss.Style
	Favorite    lipgloss.Style
	Badge       lipgloss.Style
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style
	Toast       lipgloss.Style
	Help        lipgloss.Style
}

func DefaultStyles() Styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1)

	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		Tab:         lipgloss.NewStyle().Padding(0, 1).Foreground(muted),
		ActiveTab:   lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(accent),
		Item:        lipgloss.NewStyle().PaddingLeft(2),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:       lipgloss.NewStyle().Foreground(muted),
		Sale:        lipgloss.NewStyle().Bold(true).Foreground(sale),
		New:         lipgloss.NewStyle().Bold(true).Foreground(fresh),
		Favorite:    lipgloss.NewStyle().Foreground(favored),
		Badge:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(sale).Padding(0, 1),
		Pane:        pane,
		FocusedPane: pane.BorderForeground(accent),
		Toast:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#101F38")).Background(accent).Padding(0, 1),
		Help:        lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}
