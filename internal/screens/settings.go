package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tabdeck/internal/core"
	"github.com/jask/tabdeck/internal/resource"
	"github.com/jask/tabdeck/internal/settings"
	"github.com/jask/tabdeck/internal/widgets"
)

const (
	settingsCellHeight = 4
	settingsGap        = 1
)

var (
	summaryStyle      = lipgloss.NewStyle().Foreground(core.ColorMuted)
	choiceCursorStyle = lipgloss.NewStyle().Foreground(core.ColorBg).Background(core.ColorAccent)
	choiceTitleStyle  = lipgloss.NewStyle().Foreground(core.ColorAccent).Bold(true)
)

type SettingsOptions struct {
	Items    []settings.Item
	Resolver resource.Resolver
	Opener   settings.Opener
	Keys     *core.KeyRegistry
	// OnChange runs after an entry changed its bound value or ran its action.
	OnChange func(settings.Item) tea.Cmd
}

// SettingsScreen shows entries as a two-cell grid of panes.
type SettingsScreen struct {
	rows     [][]settings.Item
	row, col int
	scroll   int
	width    int
	height   int

	res      resource.Resolver
	opener   settings.Opener
	keys     *core.KeyRegistry
	onChange func(settings.Item) tea.Cmd

	choice *choicePopup
}

// choicePopup is the option list of one choice entry.
type choicePopup struct {
	field  settings.ChoiceField
	cursor int
}

func NewSettingsScreen(opts SettingsOptions) *SettingsScreen {
	s := &SettingsScreen{
		rows:     settings.Rows(opts.Items),
		res:      opts.Resolver,
		opener:   opts.Opener,
		keys:     opts.Keys,
		onChange: opts.OnChange,
		width:    80,
		height:   20,
	}
	if s.keys == nil {
		s.keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	return s
}

func (s *SettingsScreen) Title() string { return s.res.Text(resource.SettingsTitle) }

func (s *SettingsScreen) Scope() string {
	if s.choice != nil {
		return core.ScopeChoice
	}
	return core.ScopeSettings
}

func (s *SettingsScreen) SetSize(width, height int) {
	s.width, s.height = max(1, width), max(1, height)
	s.ensureVisible()
}

// Selected is the entry under the cursor.
func (s *SettingsScreen) Selected() settings.Item {
	if len(s.rows) == 0 {
		return nil
	}
	return s.rows[s.row][s.col]
}

func (s *SettingsScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.choice != nil {
			return s, s.updateChoice(msg), false
		}
		return s.handleKey(msg)
	case tea.MouseMsg:
		return s, s.handleMouse(msg), false
	}
	return s, nil, false
}

func (s *SettingsScreen) handleKey(msg tea.KeyMsg) (core.Screen, tea.Cmd, bool) {
	scope := s.Scope()
	k := s.keys
	switch {
	case k.IsAction(msg, "close", scope):
		return s, nil, true
	case len(s.rows) == 0:
	case k.IsAction(msg, "up", scope):
		s.moveRow(-1)
	case k.IsAction(msg, "down", scope):
		s.moveRow(1)
	case k.IsAction(msg, "left", scope):
		s.col = max(0, s.col-1)
	case k.IsAction(msg, "right", scope):
		s.col = min(len(s.rows[s.row])-1, s.col+1)
	case k.IsAction(msg, "select", scope):
		return s, s.activate(s.Selected()), false
	}
	return s, nil, false
}

func (s *SettingsScreen) updateChoice(msg tea.KeyMsg) tea.Cmd {
	c := s.choice
	n := len(c.field.Labels())
	scope := s.Scope()
	k := s.keys
	switch {
	case k.IsAction(msg, "close", scope):
		s.choice = nil
	case k.IsAction(msg, "up", scope):
		c.cursor = (c.cursor - 1 + n) % n
	case k.IsAction(msg, "down", scope):
		c.cursor = (c.cursor + 1) % n
	case k.IsAction(msg, "select", scope):
		c.field.Select(c.cursor)
		s.choice = nil
		return s.changed(c.field)
	}
	return nil
}

// activate opens the choice list or the editor, or performs the entry's
// default interaction.
func (s *SettingsScreen) activate(it settings.Item) tea.Cmd {
	switch f := it.(type) {
	case nil:
		return nil
	case settings.ChoiceField:
		s.choice = &choicePopup{field: f, cursor: max(0, f.Selected())}
		return nil
	case settings.ValueField:
		return core.PushCmd(NewValueEditor(f, s.res, s.keys, s.changed))
	}
	if settings.Activate(it, s.opener) {
		return s.changed(it)
	}
	return nil
}

func (s *SettingsScreen) changed(it settings.Item) tea.Cmd {
	if s.onChange == nil {
		return nil
	}
	return s.onChange(it)
}

func (s *SettingsScreen) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		s.scroll = max(0, s.scroll-1)
	case msg.Button == tea.MouseButtonWheelDown:
		s.scroll = min(s.maxScroll(), s.scroll+1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if s.choice != nil {
			return s.clickChoice(msg.X, msg.Y)
		}
		row, col, ok := s.cellAt(msg.X, msg.Y)
		if !ok {
			return nil
		}
		s.row, s.col = row, col
		return s.activate(s.Selected())
	}
	return nil
}

// clickChoice selects the option under (x, y). Any other click dismisses
// the list.
func (s *SettingsScreen) clickChoice(x, y int) tea.Cmd {
	c := s.choice
	px, py, w, h := widgets.PopupBounds(s.renderChoice(), s.width, s.height)
	s.choice = nil
	if x <= px || x >= px+w-1 || y <= py || y >= py+h-1 {
		return nil
	}
	// Line 0 of the card content is the title.
	i := y - py - 2
	if i < 0 || i >= len(c.field.Labels()) {
		return nil
	}
	c.field.Select(i)
	return s.changed(c.field)
}

func (s *SettingsScreen) cellAt(x, y int) (row, col int, ok bool) {
	if y < 0 || x < 0 || x >= s.width {
		return 0, 0, false
	}
	row = s.scroll + y/settingsCellHeight
	if row >= len(s.rows) || y/settingsCellHeight >= s.visibleRows() {
		return 0, 0, false
	}
	if len(s.rows[row]) == 1 {
		if s.rows[row][0].Describe().Span == 2 || x < s.cellWidths()[0] {
			return row, 0, true
		}
		return 0, 0, false
	}
	w := s.cellWidths()
	switch {
	case x < w[0]:
		return row, 0, true
	case x >= w[0]+settingsGap:
		return row, 1, true
	}
	return 0, 0, false
}

func (s *SettingsScreen) cellWidths() []int {
	return widgets.SplitWidths(max(2, s.width-settingsGap), 2, nil)
}

func (s *SettingsScreen) moveRow(delta int) {
	s.row = min(len(s.rows)-1, max(0, s.row+delta))
	s.col = min(s.col, len(s.rows[s.row])-1)
	s.ensureVisible()
}

func (s *SettingsScreen) visibleRows() int { return max(1, s.height/settingsCellHeight) }

func (s *SettingsScreen) maxScroll() int { return max(0, len(s.rows)-s.visibleRows()) }

func (s *SettingsScreen) ensureVisible() {
	if s.row < s.scroll {
		s.scroll = s.row
	}
	if s.row >= s.scroll+s.visibleRows() {
		s.scroll = s.row - s.visibleRows() + 1
	}
	s.scroll = min(s.scroll, s.maxScroll())
}

func (s *SettingsScreen) View(width, height int) string {
	var lines []string
	end := min(len(s.rows), s.scroll+s.visibleRows())
	for r := s.scroll; r < end; r++ {
		lines = append(lines, s.renderRow(r, width))
	}
	grid := widgets.Text(strings.Join(lines, "\n")).Render(width, height)
	if s.choice == nil {
		return grid
	}
	return widgets.RenderPopup(grid, s.renderChoice(), width, height)
}

func (s *SettingsScreen) renderRow(r, width int) string {
	row := s.rows[r]
	if len(row) == 1 && row[0].Describe().Span == 2 {
		return s.pane(r, 0).Render(width, settingsCellHeight)
	}
	right := widgets.Widget(widgets.Text(""))
	if len(row) == 2 {
		right = s.pane(r, 1)
	}
	return widgets.HStack{Widgets: []widgets.Widget{s.pane(r, 0), right}, Gap: settingsGap}.Render(width, settingsCellHeight)
}

func (s *SettingsScreen) pane(r, c int) widgets.Pane {
	it := s.rows[r][c]
	d := it.Describe()
	content := s.res.Icon(d.Icon) + " " + describeValue(it, s.res)
	if d.Summary != resource.None {
		content += "\n" + summaryStyle.Render(s.res.Text(d.Summary))
	}
	return widgets.Pane{
		Title:    s.res.Text(d.Title),
		Height:   settingsCellHeight,
		Content:  content,
		Selected: r == s.row && c == s.col,
	}
}

func (s *SettingsScreen) renderChoice() string {
	c := s.choice
	d := c.field.Describe()
	selected := c.field.Selected()
	lines := []string{choiceTitleStyle.Render(s.res.Text(d.Title))}
	for i, id := range c.field.Labels() {
		mark := "○"
		if i == selected {
			mark = "●"
		}
		line := mark + " " + s.res.Text(id)
		if i == c.cursor {
			line = choiceCursorStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// valueText renders the current state of an entry for its pane.
type valueText struct {
	res resource.Resolver
	out string
}

func describeValue(it settings.Item, res resource.Resolver) string {
	v := &valueText{res: res}
	it.Accept(v)
	return v.out
}

func (v *valueText) VisitBoolean(b *settings.BooleanItem) {
	if b.Value() {
		v.out = "[x]"
		return
	}
	v.out = "[ ]"
}

func (v *valueText) VisitChoice(c settings.ChoiceField) {
	i := c.Selected()
	if i < 0 {
		v.out = "?"
		return
	}
	v.out = v.res.Text(c.Labels()[i])
}

func (v *valueText) VisitAction(*settings.ActionItem)     {}
func (v *valueText) VisitVersion(x *settings.VersionItem) { v.out = x.Version() }
func (v *valueText) VisitValue(f settings.ValueField)     { v.out = f.Text() }
func (v *valueText) VisitLink(l settings.Link)            { v.out = l.URL() }
