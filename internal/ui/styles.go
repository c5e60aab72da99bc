package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#2563EB")
	colorMuted   = lipgloss.Color("245")
	colorError   = lipgloss.Color("#DC2626")
	colorSuccess = lipgloss.Color("#16A34A")
	colorSubtle  = lipgloss.Color("238")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorAccent).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	entryStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedEntryStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(colorAccent)
	cursorEntryStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(colorMuted)

	tagStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	bigTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	skeletonStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	reactionStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeReactionStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorAccent)

	labelStyle        = lipgloss.NewStyle().Bold(true)
	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	requiredStyle     = lipgloss.NewStyle().Foreground(colorError)
	bannerStyle       = lipgloss.NewStyle().
				Foreground(colorError).
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorError).
				Padding(0, 1)
)
