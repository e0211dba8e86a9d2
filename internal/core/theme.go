package core

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
var (
	ColorText     lipgloss.Color = "#cdd6f4"
	ColorMuted    lipgloss.Color = "#a6adc8"
	ColorBorder   lipgloss.Color = "#585b70"
	ColorBg       lipgloss.Color = "#1e1e2e"
	ColorMantle   lipgloss.Color = "#181825"
	ColorAccent   lipgloss.Color = "#89b4fa"
	ColorFocus    lipgloss.Color = "#a6e3a1"
	ColorPressed  lipgloss.Color = "#f9e2af"
	ColorSuccess  lipgloss.Color = "#a6e3a1"
	ColorError    lipgloss.Color = "#f38ba8"
	ColorTabOff   lipgloss.Color = "#7f849c"
	ColorSurface0 lipgloss.Color = "#313244"
	ColorSurface1 lipgloss.Color = "#45475a"
	ColorPrivate  lipgloss.Color = "#cba6f7"
)
