package chat

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header lipgloss.Style
	own    lipgloss.Style
	other  lipgloss.Style
	muted  lipgloss.Style
	err    lipgloss.Style
}

func newStyles() styles {
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).
			Border(lipgloss.NormalBorder(), false, false, true, false),
		own:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		other: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60A5FA")),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
		err:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}
