package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize(m.home)
		for _, s := range m.screens.items {
			m.resize(s)
		}
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		if msg.IsErr {
			m.log.Warn("status error", "text", msg.Text)
		}
		return m, nil
	case PushScreenMsg:
		return m, m.PushScreen(msg.Screen)
	case PopScreenMsg:
		m.PopScreen()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case ConfigReloadedMsg:
		// Every screen sees the new configuration, not only the top one.
		cmds := []tea.Cmd{m.forwardHome(msg)}
		for i := range m.screens.items {
			next, cmd, _ := m.screens.items[i].Update(msg)
			if next != nil {
				m.screens.items[i] = next
			}
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	case tea.MouseMsg:
		msg.Y -= headerRows
		if msg.Y < 0 || msg.Y >= m.bodyHeight() {
			return m, nil
		}
		if m.screens.Top() != nil {
			return m, m.forwardTop(msg)
		}
		return m, m.forwardHome(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if m.screens.Top() != nil {
			return m, m.forwardTop(msg)
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		for _, b := range m.keys.BindingsForScope(scope) {
			if m.commands.Has(b.Action) && m.keys.IsAction(msg, b.Action, scope) {
				return m, m.commands.Execute(b.Action, &m)
			}
		}
		return m, m.forwardHome(msg)
	}

	if m.screens.Top() != nil {
		return m, m.forwardTop(msg)
	}
	return m, m.forwardHome(msg)
}

func (m *Model) forwardTop(msg tea.Msg) tea.Cmd {
	top := m.screens.Top()
	next, cmd, pop := top.Update(msg)
	if pop {
		m.PopScreen()
		return cmd
	}
	if next != nil {
		m.screens.ReplaceTop(next)
	}
	return cmd
}

func (m *Model) forwardHome(msg tea.Msg) tea.Cmd {
	if m.home == nil {
		return nil
	}
	next, cmd, _ := m.home.Update(msg)
	if next != nil {
		m.home = next
	}
	return cmd
}
