package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestExecuteHonoursDisabled(t *testing.T) {
	ran := false
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Execute: func(*Model) tea.Cmd { ran = true; return nil }},
		{ID: "b", Name: "Beta", Disabled: func(*Model) (bool, string) { return true, "blocked" }},
		{ID: "c", Name: "Gamma", Disabled: func(*Model) (bool, string) { return true, "" }},
	})
	m := NewModel("t", nil, NewKeyRegistry(nil), reg, nil)

	if cmd := reg.Execute("a", &m); cmd != nil || !ran {
		t.Fatalf("expected a to run")
	}
	if msg := reg.Execute("b", &m)().(StatusMsg); msg.Text != "blocked" {
		t.Fatalf("expected disabled reason, got %+v", msg)
	}
	if msg := reg.Execute("c", &m)().(StatusMsg); msg.Text != "command is disabled" {
		t.Fatalf("expected default reason, got %+v", msg)
	}
	if msg := reg.Execute("missing", &m)().(StatusMsg); msg.Text != "Unknown command: missing" {
		t.Fatalf("unexpected %+v", msg)
	}
}

func TestRegisterIgnoresEmptyID(t *testing.T) {
	reg := NewCommandRegistry(nil)
	reg.Register(Command{Name: "nameless"})
	reg.Register(Command{ID: "x"})
	if reg.Has("") || !reg.Has("x") {
		t.Fatalf("registry contents wrong")
	}
}
