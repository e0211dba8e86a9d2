package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tabdeck/internal/config"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

// ConfigReloadedMsg carries configuration re-read from disk, or the error
// that stopped it from loading.
type ConfigReloadedMsg struct {
	Config config.Config
	Err    error
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func PushCmd(s Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

func PopCmd() tea.Msg { return PopScreenMsg{} }
