package commands

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	passwordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)
