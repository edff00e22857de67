package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by all commands.
type Styles struct {
	Bold          lipgloss.Style
	BoldUnderline lipgloss.Style
	Success       lipgloss.Style
	Warning       lipgloss.Style
	Error         lipgloss.Style
	Info          lipgloss.Style
	Muted         lipgloss.Style
	Header        lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Bold:          lipgloss.NewStyle().Bold(true),
		BoldUnderline: lipgloss.NewStyle().Bold(true).Underline(true),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Warning:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Info:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Header:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	}
}
