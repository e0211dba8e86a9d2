package core

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/tabdeck/internal/config"
)

type fakeScreen struct {
	scope   string
	view    string
	layered bool
	hits    int
	mouseY  []int
	configs int
	w, h    int
}

func (s *fakeScreen) Title() string { return "Screen" }
func (s *fakeScreen) Scope() string {
	if s.scope == "" {
		return "screen:test"
	}
	return s.scope
}
func (s *fakeScreen) View(int, int) string      { return s.view }
func (s *fakeScreen) Layered() bool             { return s.layered }
func (s *fakeScreen) SetSize(width, height int) { s.w, s.h = width, height }
func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		s.hits++
		if msg.String() == "esc" {
			return s, nil, true
		}
	case tea.MouseMsg:
		s.mouseY = append(s.mouseY, msg.Y)
	case ConfigReloadedMsg:
		s.configs++
	}
	return s, nil, false
}

func newTestModel(home Screen, cmds ...Command) Model {
	return NewModel("tabdeck", home, NewKeyRegistry(DefaultKeyBindings()), NewCommandRegistry(cmds), nil)
}

func TestScreenGetsKeyBeforeHome(t *testing.T) {
	home := &fakeScreen{scope: ScopeHome}
	m := newTestModel(home)
	screen := &fakeScreen{}
	m.PushScreen(screen)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	updated := next.(Model)
	if screen.hits != 1 {
		t.Fatalf("screen should handle key first")
	}
	if home.hits != 0 {
		t.Fatalf("home should not receive key when a screen is open")
	}
	if updated.Screens() != 1 {
		t.Fatalf("screen should remain open")
	}
}

func TestScreenCanPopItself(t *testing.T) {
	m := newTestModel(&fakeScreen{scope: ScopeHome})
	m.PushScreen(&fakeScreen{})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(Model).Screens() != 0 {
		t.Fatalf("expected screen to pop on esc")
	}
}

func TestHomeKeysRunCommands(t *testing.T) {
	home := &fakeScreen{scope: ScopeHome}
	ran := 0
	m := newTestModel(home, Command{ID: "open-settings", Execute: func(m *Model) tea.Cmd {
		ran++
		return PushCmd(&fakeScreen{})
	}})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if ran != 1 || home.hits != 0 {
		t.Fatalf("bound command should run instead of reaching home")
	}
	next, _ = next.Update(cmd())
	if next.(Model).Screens() != 1 {
		t.Fatalf("command should push a screen")
	}

	// Unbound keys and actions without a command fall through to home.
	m2 := newTestModel(home)
	_, _ = m2.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if home.hits != 1 {
		t.Fatalf("home should receive keys without a command")
	}
}

func TestQuitOnlyFromHome(t *testing.T) {
	m := newTestModel(&fakeScreen{scope: ScopeHome})
	m.PushScreen(&fakeScreen{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil || next.(Model).quitting {
		t.Fatalf("q inside a screen must not quit")
	}
	next, _ = next.Update(PopScreenMsg{})
	next, cmd = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || !next.(Model).quitting {
		t.Fatalf("q on home quits")
	}
}

func TestMouseIsOffsetByHeader(t *testing.T) {
	home := &fakeScreen{scope: ScopeHome}
	m := newTestModel(home)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	next, _ = next.Update(tea.MouseMsg{X: 1, Y: 3})
	next, _ = next.Update(tea.MouseMsg{X: 1, Y: 0})
	_, _ = next.Update(tea.MouseMsg{X: 1, Y: 9})
	if len(home.mouseY) != 1 || home.mouseY[0] != 2 {
		t.Fatalf("expected one body click at y=2, got %v", home.mouseY)
	}
}

func TestResizeReachesAllScreens(t *testing.T) {
	home := &fakeScreen{scope: ScopeHome}
	m := newTestModel(home)
	top := &fakeScreen{}
	m.PushScreen(top)
	_, _ = m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	if home.w != 50 || top.w != 50 || top.h != 20-chromeRows {
		t.Fatalf("home %dx%d top %dx%d", home.w, home.h, top.w, top.h)
	}
}

func TestConfigReloadReachesEveryScreen(t *testing.T) {
	home := &fakeScreen{scope: ScopeHome}
	m := newTestModel(home)
	a, b := &fakeScreen{}, &fakeScreen{}
	m.PushScreen(a)
	m.PushScreen(b)
	_, _ = m.Update(ConfigReloadedMsg{Config: config.Config{}})
	if home.configs != 1 || a.configs != 1 || b.configs != 1 {
		t.Fatalf("config reload counts home=%d a=%d b=%d", home.configs, a.configs, b.configs)
	}
}

func TestStatusMessages(t *testing.T) {
	m := newTestModel(&fakeScreen{scope: ScopeHome})
	next, _ := m.Update(ErrorCmd(errors.New("disk full"))())
	text, isErr := next.(Model).Status()
	if text != "disk full" || !isErr {
		t.Fatalf("status %q err=%v", text, isErr)
	}
	next, _ = next.Update(StatusCmd("saved")())
	text, isErr = next.(Model).Status()
	if text != "saved" || isErr {
		t.Fatalf("status %q err=%v", text, isErr)
	}
}

func TestLayeredScreenShowsHomeThrough(t *testing.T) {
	home := &fakeScreen{scope: ScopeHome, view: "HOME0\nHOME1\nHOME2"}
	m := newTestModel(home)
	m.PushScreen(&fakeScreen{view: "\nOVER\n", layered: true})

	lines := strings.Split(ansi.Strip(m.renderBody(20, 3)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	if !strings.Contains(lines[0], "HOME0") || !strings.Contains(lines[1], "OVER") || !strings.Contains(lines[2], "HOME2") {
		t.Fatalf("unexpected layering %q", lines)
	}

	m.PushScreen(&fakeScreen{view: "OPAQUE"})
	if body := ansi.Strip(m.renderBody(20, 3)); strings.Contains(body, "HOME") {
		t.Fatalf("opaque screens hide what is beneath, got %q", body)
	}
}
