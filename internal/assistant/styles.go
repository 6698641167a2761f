package assistant

import "github.com/charmbracelet/lipgloss"

var (
	chatTitleStyle = lipgloss.NewStyle().Bold(true)
	userStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	commandStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	warnStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	helpStyle      = lipgloss.NewStyle().Faint(true)
)
