package core

import (
	tea "github.com/charmbracelet/bubbletea"
	"pkt.systems/pslog"

	"github.com/jask/tabdeck/internal/logx"
)

// Screen is a full-body view. Update returns pop=true to remove itself.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Sizer is implemented by screens that need their body size outside View,
// for example to hit-test mouse events.
type Sizer interface {
	SetSize(width, height int)
}

// Initializer is implemented by screens that start work when pushed.
type Initializer interface {
	Init() tea.Cmd
}

// Layered screens are drawn over the screen beneath them. Their empty lines
// show the lower screen through.
type Layered interface {
	Layered() bool
}

type Model struct {
	width     int
	height    int
	title     string
	home      Screen
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool
	log       pslog.Logger
}

func NewModel(title string, home Screen, keys *KeyRegistry, commands *CommandRegistry, log pslog.Logger) Model {
	if log == nil {
		log = logx.Discard()
	}
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	m := Model{
		title:    title,
		home:     home,
		keys:     keys,
		commands: commands,
		log:      log,
		status:   "Ready",
		width:    100,
		height:   32,
	}
	m.resize(home)
	return m
}

func (m Model) Init() tea.Cmd {
	if init, ok := m.home.(Initializer); ok {
		return init.Init()
	}
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if m.home == nil {
		return "app"
	}
	return m.home.Scope()
}

// PushScreen sizes s to the body and puts it on top. The returned command
// is the screen's Init, if any.
func (m *Model) PushScreen(s Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	m.resize(s)
	m.screens.Push(s)
	m.log.Debug("screen pushed", "scope", s.Scope(), "depth", m.screens.Len())
	if init, ok := s.(Initializer); ok {
		return init.Init()
	}
	return nil
}

func (m *Model) PopScreen() {
	if s := m.screens.Pop(); s != nil {
		m.log.Debug("screen popped", "scope", s.Scope(), "depth", m.screens.Len())
	}
}

func (m Model) Screens() int { return m.screens.Len() }

func (m Model) Top() Screen { return m.screens.Top() }

func (m Model) Home() Screen { return m.home }

func (m Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m Model) Keys() *KeyRegistry { return m.keys }

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m *Model) resize(s Screen) {
	if sz, ok := s.(Sizer); ok {
		sz.SetSize(max(1, m.width), m.bodyHeight())
	}
}

// bodyHeight is the height left after the header, status and footer rows.
func (m Model) bodyHeight() int {
	return max(1, m.height-chromeRows)
}
