package tui

import (
	"github.com/charmbracelet/lipgloss"

	"todo-tracker/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	formStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true)
	editingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(13)
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Width(13).Bold(true)
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	statusPending    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusInProgress = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	statusDone       = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	busyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func styleForStatus(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusPending:
		return statusPending
	case domain.StatusInProgress:
		return statusInProgress
	case domain.StatusDone:
		return statusDone
	default:
		return lipgloss.NewStyle()
	}
}
