package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Clear     key.Binding
	Sample    key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	ValueUp   key.Binding
	ValueDown key.Binding
	CompUp    key.Binding
	CompDown  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Clear:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Sample:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "load sample")),
		MoveUp:    key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
		MoveDown:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
		ValueUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "value")),
		ValueDown: key.NewBinding(key.WithKeys("-")),
		CompUp:    key.NewBinding(key.WithKeys(">", "."), key.WithHelp("</>", "complexity")),
		CompDown:  key.NewBinding(key.WithKeys("<", ",")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Clear, k.Sample, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Delete, k.Clear},
		{k.Sample, k.MoveUp, k.MoveDown},
		{k.ValueUp, k.CompUp},
		{k.Help, k.Quit},
	}
}
