package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"octalysis/internal/state"
)

type model struct {
	app            *App
	width          int
	height         int
	mode           Mode
	selected       state.Driver
	chart          *Chart
	theme          Theme
	keys           keyMap
	help           help.Model
	nameInput      textinput.Model
	noteInput      textarea.Model
	originalText   string
	filename       string
	fileOp         FileOperation
	confirmAction  ConfirmAction
	pendingExport  string
	summary        string
	undoStack      []Action
	redoStack      []Action
	ticking        bool
	errorMessage   string
	successMessage string
}

type Action struct {
	Type    ActionType
	Data    interface{}
	Inverse interface{}
}

type SetDriveData struct {
	Driver state.Driver
	Value  int
}

type SetCommentData struct {
	Driver state.Driver
	Text   string
}

type SetProjectNameData struct {
	Name string
}

type ResetData struct {
	State state.AppState
}

// externalStateMsg carries a snapshot written by another process.
type externalStateMsg struct {
	state state.AppState
}

type frameMsg struct{}
