package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Decrease  key.Binding
	Increase  key.Binding
	DecBig    key.Binding
	IncBig    key.Binding
	Note      key.Binding
	Name      key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Theme     key.Binding
	Language  key.Binding
	Reset     key.Binding
	ExportPNG key.Binding
	ExportSVG key.Binding
	ExportTXT key.Binding
	Copy      key.Binding
	Summary   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "prev driver")),
		Down:      key.NewBinding(key.WithKeys("j", "down", "tab"), key.WithHelp("↓/j", "next driver")),
		Decrease:  key.NewBinding(key.WithKeys("h", "left", "-"), key.WithHelp("←/h", "-1")),
		Increase:  key.NewBinding(key.WithKeys("l", "right", "+", "="), key.WithHelp("→/l", "+1")),
		DecBig:    key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H", "-5")),
		IncBig:    key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("L", "+5")),
		Note:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit note")),
		Name:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "project name")),
		Undo:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+r", "U"), key.WithHelp("ctrl+r", "redo")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Language:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "language")),
		Reset:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
		ExportPNG: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "export png")),
		ExportSVG: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "export svg")),
		ExportTXT: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export txt")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy summary")),
		Summary:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "summary")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Decrease, k.Increase, k.Note, k.Undo, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decrease, k.Increase, k.DecBig, k.IncBig},
		{k.Note, k.Name, k.Undo, k.Redo, k.Reset},
		{k.ExportPNG, k.ExportSVG, k.ExportTXT, k.Copy, k.Summary},
		{k.Theme, k.Language, k.Help, k.Quit},
	}
}
