package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/quadrant/internal/model"
	"github.com/idilsaglam/quadrant/internal/quadrant"
	"github.com/idilsaglam/quadrant/internal/sample"
	"github.com/idilsaglam/quadrant/internal/store"
	"github.com/idilsaglam/quadrant/internal/ui"
)

// Options tune the interactive session.
type Options struct {
	Sample     string // name of the sample last loaded, used by the cycle key
	PlotWidth  int
	PlotHeight int
	Logger     *zap.Logger
}

type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeConfirmClear
)

// changedMsg is delivered after every successful store mutation.
type changedMsg store.Snapshot

// listItem adapts a view record to bubbles/list.Item.
type listItem struct {
	view  quadrant.View
	index int
}

func (i listItem) Title() string       { return i.view.Name }
func (i listItem) Description() string { return i.view.Label() }
func (i listItem) FilterValue() string { return i.view.Name }

// itemDelegate renders one initiative per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	name := it.view.Name
	if len([]rune(name)) > 28 {
		name = string([]rune(name)[:25]) + "..."
	}
	line := fmt.Sprintf("%s %s %-28s %s",
		t.QuadrantStyle(it.view.Quadrant).Render(ui.Marker(it.index)),
		ui.Badge(it.view.Quadrant),
		name,
		t.Muted.Render(fmt.Sprintf("v%d c%d", it.view.Value, it.view.Complexity)),
	)
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}

// Model is the Bubble Tea model of an interactive session. It never touches
// the collection directly; every edit goes through the store and the view is
// rebuilt when the store reports a change.
type Model struct {
	store   *store.Store
	changes chan store.Snapshot
	cancel  func()
	log     *zap.Logger

	list   list.Model
	form   form
	help   help.Model
	keys   keyMap
	mode   mode
	status string
	isErr  bool

	sample        string
	width, height int
	plotW, plotH  int
}

// New builds a session over s and subscribes to its changes.
func New(s *store.Store, opt Options) Model {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "Initiatives"
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("initiative", "initiatives")

	m := Model{
		store:   s,
		changes: make(chan store.Snapshot, 16),
		log:     log,
		list:    l,
		form:    newForm(),
		help:    help.New(),
		keys:    defaultKeys(),
		sample:  opt.Sample,
		width:   100,
		height:  30,
		plotW:   max(opt.PlotWidth, 21),
		plotH:   max(opt.PlotHeight, 11),
	}
	m.list.SetSize(m.listWidth(), m.height-8)
	ch := m.changes
	m.cancel = s.Subscribe(func(snap store.Snapshot) {
		select {
		case ch <- snap:
		default:
			// A refresh is already pending; it reads the latest state.
		}
	})
	m.refresh()
	return m
}

// Close unregisters the store subscription.
func (m Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

func waitForChange(ch <-chan store.Snapshot) tea.Cmd {
	return func() tea.Msg { return changedMsg(<-ch) }
}

func (m Model) Init() tea.Cmd { return waitForChange(m.changes) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(m.listWidth(), max(m.height-8, 5))
		return m, nil
	case changedMsg:
		m.refresh()
		return m, waitForChange(m.changes)
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmClear:
		return m.updateConfirm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(km, m.keys.Add):
		m.mode = modeForm
		return m, m.form.open(nil)
	case key.Matches(km, m.keys.Edit):
		if in, ok := m.selected(); ok {
			m.mode = modeForm
			return m, m.form.open(&in)
		}
		return m, nil
	case key.Matches(km, m.keys.Delete):
		if in, ok := m.selected(); ok {
			m.store.Remove(in.ID)
			m.setStatus("removed "+in.Name, false)
		}
		return m, nil
	case key.Matches(km, m.keys.Clear):
		if m.store.Len() > 0 {
			m.mode = modeConfirmClear
		}
		return m, nil
	case key.Matches(km, m.keys.Sample):
		m.loadNextSample()
		return m, nil
	case key.Matches(km, m.keys.MoveUp):
		m.move(-1)
		return m, nil
	case key.Matches(km, m.keys.MoveDown):
		m.move(1)
		return m, nil
	case key.Matches(km, m.keys.ValueUp):
		m.nudge(1, 0)
		return m, nil
	case key.Matches(km, m.keys.ValueDown):
		m.nudge(-1, 0)
		return m, nil
	case key.Matches(km, m.keys.CompUp):
		m.nudge(0, 1)
		return m, nil
	case key.Matches(km, m.keys.CompDown):
		m.nudge(0, -1)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.form.update(msg)
	}
	switch km.String() {
	case "esc":
		m.form.close()
		m.mode = modeBrowse
		return m, nil
	case "tab", "down":
		return m, m.form.setFocus(m.form.focus + 1)
	case "shift+tab", "up":
		return m, m.form.setFocus(m.form.focus - 1)
	case "enter":
		d, ok := m.form.draft()
		if !ok {
			return m, nil
		}
		m.submit(d)
		m.form.close()
		m.mode = modeBrowse
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m *Model) submit(d model.Draft) {
	if m.form.editID == "" {
		in, err := m.store.Add(d)
		if err != nil {
			m.setStatus(err.Error(), true)
			return
		}
		m.setStatus("added "+in.Name, false)
		return
	}
	name, value, complexity := d.Name, d.Value, d.Complexity
	_, err := m.store.Update(m.form.editID, model.Patch{Name: &name, Value: &value, Complexity: &complexity})
	switch {
	case errors.Is(err, model.ErrNotFound):
		// The row went away while the form was open.
		m.log.Debug("edit of stale initiative ignored", zap.String("id", m.form.editID))
		m.setStatus("", false)
	case err != nil:
		m.setStatus(err.Error(), true)
	default:
		m.setStatus("updated "+name, false)
	}
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "y", "Y":
		m.store.Clear()
		m.setStatus("cleared all initiatives", false)
	default:
		m.setStatus("", false)
	}
	m.mode = modeBrowse
	return m, nil
}

func (m *Model) loadNextSample() {
	name := sample.Next(m.sample)
	drafts, err := sample.Lookup(name)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if _, err := m.store.LoadAll(drafts); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.sample = name
	m.setStatus(fmt.Sprintf("loaded sample %q", name), false)
}

func (m *Model) move(delta int) {
	in, ok := m.selected()
	if !ok {
		return
	}
	// The cursor follows the initiative on the next refresh.
	if err := m.store.Move(in.ID, delta); err != nil && !errors.Is(err, model.ErrNotFound) {
		m.setStatus(err.Error(), true)
	}
}

// nudge shifts the selected initiative's scores. Out-of-range results are
// reported and leave it unchanged.
func (m *Model) nudge(dv, dc int) {
	in, ok := m.selected()
	if !ok {
		return
	}
	var p model.Patch
	if dv != 0 {
		v := in.Value + dv
		p.Value = &v
	}
	if dc != 0 {
		c := in.Complexity + dc
		p.Complexity = &c
	}
	_, err := m.store.Update(in.ID, p)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("", false)
}

// selected returns the initiative under the cursor, read back from the store.
func (m Model) selected() (model.Initiative, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Initiative{}, false
	}
	return m.store.Get(it.view.ID)
}

// refresh rebuilds list rows from fresh view records, keeping the cursor on
// the same initiative when it still exists.
func (m *Model) refresh() {
	var keepID string
	if it, ok := m.list.SelectedItem().(listItem); ok {
		keepID = it.view.ID
	}
	cursor := m.list.Index()

	views := m.store.Views()
	items := make([]list.Item, len(views))
	for i, v := range views {
		items[i] = listItem{view: v, index: i}
		if v.ID == keepID {
			cursor = i
		}
	}
	m.list.SetItems(items)
	if len(items) > 0 {
		m.list.Select(max(0, min(len(items)-1, cursor)))
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status, m.isErr = s, isErr
}

func (m Model) listWidth() int {
	return max(m.width-m.plotW-12, 30)
}

func (m Model) View() string {
	t := ui.Current()
	views := make([]quadrant.View, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			views = append(views, li.view)
		}
	}

	left := ui.Panel([]string{m.list.View()})
	right := ui.Panel([]string{ui.Plot(views, m.plotW, m.plotH), "", ui.Summary(views)})
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var footer string
	switch m.mode {
	case modeForm:
		footer = ui.Panel([]string{m.form.view(formStyles{title: t.Title, err: t.Error, help: t.Muted})})
	case modeConfirmClear:
		footer = t.Error.Render(fmt.Sprintf("Clear all %d initiatives? (y/n)", m.store.Len()))
	default:
		var lines []string
		if m.status != "" {
			style := t.Success
			if m.isErr {
				style = t.Error
			}
			lines = append(lines, style.Render(m.status))
		}
		lines = append(lines, m.help.View(m.keys))
		footer = strings.Join(lines, "\n")
	}
	return body + "\n" + footer
}

type formStyles struct {
	title, err, help lipgloss.Style
}

// Run starts the interactive session and blocks until the user quits.
func Run(s *store.Store, opt Options) error {
	m := New(s, opt)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
