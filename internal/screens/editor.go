package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tabdeck/internal/core"
	"github.com/jask/tabdeck/internal/resource"
	"github.com/jask/tabdeck/internal/settings"
	"github.com/jask/tabdeck/internal/widgets"
)

var editorErrStyle = lipgloss.NewStyle().Foreground(core.ColorError)

// ValueEditor edits one free-form entry through its codec.
type ValueEditor struct {
	field  settings.ValueField
	res    resource.Resolver
	keys   *core.KeyRegistry
	onSave func(settings.Item) tea.Cmd
	input  textinput.Model
	err    string
}

func NewValueEditor(field settings.ValueField, res resource.Resolver, keys *core.KeyRegistry, onSave func(settings.Item) tea.Cmd) *ValueEditor {
	inp := textinput.New()
	inp.Prompt = "> "
	inp.SetValue(field.Text())
	inp.CursorEnd()
	inp.Focus()
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	return &ValueEditor{field: field, res: res, keys: keys, onSave: onSave, input: inp}
}

func (e *ValueEditor) Title() string { return e.res.Text(e.field.Describe().Title) }
func (e *ValueEditor) Scope() string { return core.ScopeEditor }

func (e *ValueEditor) Init() tea.Cmd { return textinput.Blink }

// Value is the text currently in the prompt.
func (e *ValueEditor) Value() string { return e.input.Value() }

func (e *ValueEditor) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case e.keys.IsAction(km, "close", core.ScopeEditor):
			return e, nil, true
		case e.keys.IsAction(km, "confirm", core.ScopeEditor):
			if err := e.field.SetText(e.input.Value()); err != nil {
				e.err = e.res.Text(resource.SettingsInvalid) + ": " + err.Error()
				return e, core.ErrorCmd(err), false
			}
			e.err = ""
			if e.onSave != nil {
				return e, e.onSave(e.field), true
			}
			return e, nil, true
		}
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd, false
}

func (e *ValueEditor) View(width, height int) string {
	e.input.Width = max(1, width-8)
	lines := []string{e.input.View()}
	if e.err != "" {
		lines = append(lines, editorErrStyle.Render(e.err))
	}
	pane := widgets.Pane{Title: e.Title(), Height: len(lines) + 2, Content: strings.Join(lines, "\n"), Focused: true}
	return widgets.Text("\n" + pane.Render(width, height)).Render(width, height)
}
