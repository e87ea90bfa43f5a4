package main

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"octalysis/internal/state"
)

func (m model) updateNormal(msg tea.KeyMsg) (model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Quit):
		if !m.app.config.Confirmations {
			return m, tea.Quit
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmQuit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.selected = state.Drivers[(int(m.selected)+state.DriverCount-1)%state.DriverCount]
	case key.Matches(msg, m.keys.Down):
		m.selected = state.Drivers[(int(m.selected)+1)%state.DriverCount]
	case key.Matches(msg, m.keys.Decrease, m.keys.Increase, m.keys.DecBig, m.keys.IncBig):
		m.adjustSelected(m.getStep(msg))
	case key.Matches(msg, m.keys.Undo):
		m.undo()
	case key.Matches(msg, m.keys.Redo):
		m.redo()
	case key.Matches(msg, m.keys.Theme):
		m.theme = m.theme.Toggle()
	case key.Matches(msg, m.keys.Language):
		if err := m.app.tr.Toggle(); err != nil {
			m.errorMessage = err.Error()
		}
		m.nameInput.Placeholder = m.app.tr.T("project.placeholder")
	case key.Matches(msg, m.keys.Note):
		m.originalText = m.app.store.Snapshot().Comment(m.selected)
		m.noteInput.SetValue(m.originalText)
		m.mode = ModeNoteEdit
		return m, m.noteInput.Focus()
	case key.Matches(msg, m.keys.Name):
		m.originalText = m.app.store.Snapshot().ProjectName
		m.nameInput.SetValue(m.originalText)
		m.nameInput.CursorEnd()
		m.mode = ModeNameInput
		return m, m.nameInput.Focus()
	case key.Matches(msg, m.keys.Reset):
		if m.app.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmReset
		} else {
			m.resetAll()
		}
	case key.Matches(msg, m.keys.ExportPNG):
		m.startFileInput(FileOpExportPNG)
	case key.Matches(msg, m.keys.ExportSVG):
		m.startFileInput(FileOpExportSVG)
	case key.Matches(msg, m.keys.ExportTXT):
		m.startFileInput(FileOpExportTXT)
	case key.Matches(msg, m.keys.Copy):
		m.copySummary()
	case key.Matches(msg, m.keys.Summary):
		m.summary = renderMarkdown(summaryMarkdown(m.app.store.Snapshot(), m.app.tr), m.width-4, m.theme)
		m.mode = ModeSummary
	}
	return m, nil
}

func (m *model) getStep(msg tea.KeyMsg) int {
	switch {
	case key.Matches(msg, m.keys.DecBig):
		return -sliderBigStep
	case key.Matches(msg, m.keys.IncBig):
		return sliderBigStep
	case key.Matches(msg, m.keys.Decrease):
		return -sliderStep
	default:
		return sliderStep
	}
}

// adjustSelected moves the focused slider by delta and records the change.
func (m *model) adjustSelected(delta int) {
	m.setDrive(m.selected, m.app.store.Snapshot().Value(m.selected)+delta)
}

func (m *model) setDrive(d state.Driver, value int) {
	old := m.app.store.Snapshot().Value(d)
	m.app.store.UpdateDriver(d, float64(value))
	if now := m.app.store.Snapshot().Value(d); now != old {
		m.recordAction(ActionSetDrive, SetDriveData{Driver: d, Value: now}, SetDriveData{Driver: d, Value: old})
	}
}

func (m *model) resetAll() {
	before := m.app.store.Snapshot()
	m.app.store.Reset()
	if after := m.app.store.Snapshot(); after != before {
		m.recordAction(ActionReset, ResetData{State: after}, ResetData{State: before})
	}
	m.successMessage = "Reset to defaults"
}

// chartPane is the area left of the side panel, above the status lines.
func (m *model) chartPane() (cols, rows int) {
	return max(m.width-sidePanelWidth-1, 0), max(m.height-2, 0)
}

// chartOrigin is the screen cell of the chart grid's top-left corner.
func (m *model) chartOrigin() (x, y int) {
	paneCols, _ := m.chartPane()
	cols, _ := m.chart.Size()
	return max((paneCols-cols)/2, 0), 0
}

// handleMouse routes the left button to the chart or the sliders. Once a
// chart drag has started every motion and the release go to the chart, even
// outside it and whatever mode the UI is in. New presses only land while the
// chart is on screen in normal mode.
func (m model) handleMouse(msg tea.MouseMsg) model {
	ox, oy := m.chartOrigin()
	col, row := msg.X-ox, msg.Y-oy

	switch msg.Action {
	case tea.MouseActionMotion:
		m.chart.MoveCell(col, row)
	case tea.MouseActionRelease:
		if d, ok := m.finishDrag(); ok {
			m.selected = d
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.chart.Dragging() {
			return m
		}
		if m.mode != ModeNormal || m.help.ShowAll {
			return m
		}
		cols, rows := m.chart.Size()
		if col >= 0 && row >= 0 && col < cols && row < rows {
			if m.chart.PressCell(col, row) {
				m.errorMessage, m.successMessage = "", ""
			}
			return m
		}
		if d, v, ok := m.sliderAt(msg.X, msg.Y); ok {
			m.selected = d
			m.setDrive(d, v)
		}
	}
	return m
}

// finishDrag ends a chart drag, if any, and records it as one undo step.
func (m *model) finishDrag() (state.Driver, bool) {
	d, from, to, ok := m.chart.Release()
	if !ok {
		return 0, false
	}
	if from >= 0 && from != to {
		m.recordAction(ActionSetDrive, SetDriveData{Driver: d, Value: to}, SetDriveData{Driver: d, Value: from})
	}
	return d, true
}

// sliderAt maps a screen cell on a slider bar to its driver and value.
func (m *model) sliderAt(x, y int) (state.Driver, int, bool) {
	paneCols, _ := m.chartPane()
	i := y - sliderTop
	if i < 0 || i >= state.DriverCount {
		return 0, 0, false
	}
	bar := x - (paneCols + 1 + panelPadding + sliderBarOffset)
	if bar < 0 || bar >= sliderWidth {
		return 0, 0, false
	}
	v := int(math.Round(float64(bar) / float64(sliderWidth-1) * state.MaxValue))
	return state.Drivers[i], v, true
}
