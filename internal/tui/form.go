package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/quadrant/internal/model"
)

const (
	fieldName = iota
	fieldValue
	fieldComplexity
	fieldCount
)

var fieldKeys = [fieldCount]string{"name", model.FieldValue, model.FieldComplexity}

// form is the inline add/edit editor. editID is empty when adding.
type form struct {
	inputs [fieldCount]textinput.Model
	focus  int
	editID string
	errs   map[string]string
}

func newForm() form {
	var f form
	labels := [fieldCount]string{"Name", "Value (1-9)", "Complexity (1-9)"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = labels[i] + ": "
		ti.CharLimit = model.MaxNameLength
		if i != fieldName {
			ti.CharLimit = 1
			ti.Width = 3
		}
		f.inputs[i] = ti
	}
	f.inputs[fieldName].Placeholder = "Initiative name"
	return f
}

// open resets the form for a new initiative or for editing in.
func (f *form) open(in *model.Initiative) tea.Cmd {
	f.errs = nil
	f.editID = ""
	name, value, complexity := "", strconv.Itoa(model.DefaultScore), strconv.Itoa(model.DefaultScore)
	if in != nil {
		f.editID = in.ID
		name, value, complexity = in.Name, strconv.Itoa(in.Value), strconv.Itoa(in.Complexity)
	}
	f.inputs[fieldName].SetValue(name)
	f.inputs[fieldValue].SetValue(value)
	f.inputs[fieldComplexity].SetValue(complexity)
	for i := range f.inputs {
		f.inputs[i].CursorEnd()
	}
	return f.setFocus(fieldName)
}

func (f *form) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *form) close() {
	for i := range f.inputs {
		f.inputs[i].Blur()
		f.inputs[i].SetValue("")
	}
	f.errs = nil
	f.editID = ""
}

// draft validates the current input the way the creation form does.
func (f *form) draft() (model.Draft, bool) {
	d, err := model.ParseDraft(
		f.inputs[fieldName].Value(),
		f.inputs[fieldValue].Value(),
		f.inputs[fieldComplexity].Value(),
	)
	var fe *model.FormError
	if errors.As(err, &fe) {
		f.errs = fe.Fields
		return model.Draft{}, false
	}
	f.errs = nil
	return d, true
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f form) view(t formStyles) string {
	title := "Add initiative"
	if f.editID != "" {
		title = "Edit initiative"
	}
	lines := []string{t.title.Render(title)}
	for i, in := range f.inputs {
		line := in.View()
		if msg, ok := f.errs[fieldKeys[i]]; ok {
			line += "  " + t.err.Render(msg)
		}
		lines = append(lines, line)
	}
	lines = append(lines, t.help.Render("tab next field • enter save • esc cancel"))
	return strings.Join(lines, "\n")
}
