package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tabdeck/internal/core"
	"github.com/jask/tabdeck/internal/screens"
)

// home is the home screen with the app's own reactions layered on.
type home struct {
	*screens.HomeScreen
	app *App
}

func (h *home) Init() tea.Cmd { return h.app.startCmd() }

func (h *home) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if m, ok := msg.(core.ConfigReloadedMsg); ok {
		return h, h.app.reload(m), false
	}
	_, cmd, pop := h.HomeScreen.Update(msg)
	return h, cmd, pop
}
