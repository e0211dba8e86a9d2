package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(ColorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(ColorMantle).
			Foreground(ColorText)

	activeTabStyle = lipgloss.NewStyle().
			Background(ColorSurface0).
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(ColorMantle).
				Foreground(ColorTabOff).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Background(ColorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Background(ColorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(ColorMantle)
)
