package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/idilsaglam/quadrant/internal/model"
	"github.com/idilsaglam/quadrant/internal/store"
	"github.com/idilsaglam/quadrant/internal/ui"
)

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab       = tea.KeyMsg{Type: tea.KeyTab}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
)

func newTestModel(t *testing.T, drafts ...model.Draft) (Model, *store.Store) {
	t.Helper()
	require.NoError(t, ui.SetColorMode("never"))
	n := 0
	s := store.New(store.WithIDFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))
	if len(drafts) > 0 {
		_, err := s.LoadAll(drafts)
		require.NoError(t, err)
	}
	m := New(s, Options{PlotWidth: 41, PlotHeight: 21})
	t.Cleanup(m.Close)
	return drain(t, m), s
}

// drain delivers pending store notifications the way the program loop would.
func drain(t *testing.T, m Model) Model {
	t.Helper()
	for {
		select {
		case snap := <-m.changes:
			res, _ := m.Update(changedMsg(snap))
			m = res.(Model)
		default:
			return m
		}
	}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		res, _ := m.Update(msg)
		var ok bool
		m, ok = res.(Model)
		require.True(t, ok)
		m = drain(t, m)
	}
	return m
}

func names(s *store.Store) []string {
	var out []string
	for _, it := range s.List() {
		out = append(out, it.Name)
	}
	return out
}

func TestAddThroughForm(t *testing.T) {
	m, s := newTestModel(t)

	m = send(t, m, keyRunes("a"))
	require.Equal(t, modeForm, m.mode)
	m = send(t, m,
		keyRunes("Checkout"),
		keyTab, keyBackspace, keyRunes("7"),
		keyTab, keyBackspace, keyRunes("3"),
		keyEnter,
	)

	assert.Equal(t, modeBrowse, m.mode)
	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, model.Draft{Name: "Checkout", Value: 7, Complexity: 3},
		model.Draft{Name: list[0].Name, Value: list[0].Value, Complexity: list[0].Complexity})
	require.Len(t, m.list.Items(), 1)
	assert.Contains(t, m.View(), "Checkout")
	assert.Contains(t, m.status, "added")
}

func TestFormDefaultsAndValidation(t *testing.T) {
	m, s := newTestModel(t)

	m = send(t, m, keyRunes("a"))
	assert.Equal(t, "5", m.form.inputs[fieldValue].Value())
	assert.Equal(t, "5", m.form.inputs[fieldComplexity].Value())

	m = send(t, m, keyRunes("x"), keyEnter)
	assert.Equal(t, modeForm, m.mode)
	assert.Contains(t, m.form.errs["name"], "at least 2")
	assert.Zero(t, s.Len())

	m = send(t, m, keyEsc)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Zero(t, s.Len())
}

func TestEditThroughForm(t *testing.T) {
	m, s := newTestModel(t, model.Draft{Name: "A", Value: 7, Complexity: 3})

	m = send(t, m, keyRunes("e"))
	require.Equal(t, "id-1", m.form.editID)
	assert.Equal(t, "A", m.form.inputs[fieldName].Value())
	m = send(t, m, keyRunes("B"), keyEnter)

	got, ok := s.Get("id-1")
	require.True(t, ok)
	assert.Equal(t, model.Initiative{ID: "id-1", Name: "AB", Value: 7, Complexity: 3}, got)
}

func TestEditOfRemovedInitiativeIsIgnored(t *testing.T) {
	s := store.New()
	_, err := s.Add(model.Draft{Name: "Alpha", Value: 7, Complexity: 3})
	require.NoError(t, err)
	core, logs := observer.New(zap.DebugLevel)
	m := New(s, Options{PlotWidth: 41, PlotHeight: 21, Logger: zap.New(core)})
	t.Cleanup(m.Close)
	m = drain(t, m)

	m = send(t, m, keyRunes("e"))
	require.Equal(t, modeForm, m.mode)
	s.Clear()
	m = send(t, m, keyEnter)

	assert.Equal(t, modeBrowse, m.mode)
	assert.False(t, m.isErr)
	assert.Zero(t, s.Len())
	assert.Empty(t, m.list.Items())
	assert.Equal(t, 1, logs.FilterMessage("edit of stale initiative ignored").Len())
}

func TestDeleteAndClear(t *testing.T) {
	m, s := newTestModel(t,
		model.Draft{Name: "A", Value: 7, Complexity: 3},
		model.Draft{Name: "B", Value: 3, Complexity: 7},
		model.Draft{Name: "C", Value: 5, Complexity: 5},
	)

	m = send(t, m, keyRunes("d"))
	assert.Equal(t, []string{"B", "C"}, names(s))

	m = send(t, m, keyRunes("x"))
	require.Equal(t, modeConfirmClear, m.mode)
	assert.Contains(t, m.View(), "Clear all 2 initiatives?")
	m = send(t, m, keyRunes("n"))
	assert.Equal(t, 2, s.Len())

	m = send(t, m, keyRunes("x"), keyRunes("y"))
	assert.Zero(t, s.Len())
	assert.Empty(t, m.list.Items())

	m = send(t, m, keyRunes("x"))
	assert.Equal(t, modeBrowse, m.mode, "clearing an empty collection needs no confirmation")
}

func TestSampleCycle(t *testing.T) {
	m, s := newTestModel(t)

	m = send(t, m, keyRunes("l"))
	assert.Equal(t, "Example", m.sample)
	assert.Equal(t, []string{"Example 1", "Example 2", "Example 3"}, names(s))

	m = send(t, m, keyRunes("l"))
	assert.Equal(t, "Online Retail", m.sample)
	assert.Len(t, m.list.Items(), s.Len())
}

func TestNudgeRespectsRange(t *testing.T) {
	m, s := newTestModel(t, model.Draft{Name: "A", Value: 9, Complexity: 1})

	m = send(t, m, keyRunes("+"))
	assert.True(t, m.isErr)
	assert.Contains(t, m.status, "out of range")
	got, _ := s.Get("id-1")
	assert.Equal(t, 9, got.Value)

	m = send(t, m, keyRunes("-"), keyRunes(">"))
	assert.False(t, m.isErr)
	got, _ = s.Get("id-1")
	assert.Equal(t, 8, got.Value)
	assert.Equal(t, 2, got.Complexity)

	m = send(t, m, keyRunes("<"), keyRunes("<"))
	assert.True(t, m.isErr)
	got, _ = s.Get("id-1")
	assert.Equal(t, 1, got.Complexity)
}

func TestMoveKeepsCursorOnInitiative(t *testing.T) {
	m, s := newTestModel(t,
		model.Draft{Name: "A", Value: 7, Complexity: 3},
		model.Draft{Name: "B", Value: 3, Complexity: 7},
	)

	m = send(t, m, keyRunes("J"))
	assert.Equal(t, []string{"B", "A"}, names(s))
	in, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "A", in.Name)

	m = send(t, m, keyRunes("K"))
	assert.Equal(t, []string{"A", "B"}, names(s))
	assert.Equal(t, 0, m.list.Index())
}

func TestViewShowsPlotAndSummary(t *testing.T) {
	m, _ := newTestModel(t,
		model.Draft{Name: "Quick win", Value: 7, Complexity: 3},
		model.Draft{Name: "Money pit", Value: 3, Complexity: 7},
	)
	m = send(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})

	out := m.View()
	for _, want := range []string{"Quick win", "Money pit", "HVLC", "LVHC", "Total 2", "Complexity"} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.Contains(out, "add"), "help line should be rendered")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestExternalMutationRefreshesList(t *testing.T) {
	defer goleak.VerifyNone(t)
	m, s := newTestModel(t)
	_, err := s.Add(model.Draft{Name: "From elsewhere", Value: 2, Complexity: 2})
	require.NoError(t, err)

	m = drain(t, m)
	require.Len(t, m.list.Items(), 1)
	assert.Equal(t, "From elsewhere", m.list.Items()[0].(listItem).view.Name)
}
