package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)

	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Margin(0, 2)

	takenStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	waitingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	actionableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	missedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	lowStockStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	orderedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)
