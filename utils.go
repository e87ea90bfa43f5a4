package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) updateNameInput(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.nameInput.Blur()
		m.mode = ModeNormal
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.nameInput.Value())
		m.nameInput.Blur()
		m.mode = ModeNormal
		if name != m.originalText {
			m.app.store.SetProjectName(name)
			m.recordAction(ActionSetProjectName, SetProjectNameData{Name: name}, SetProjectNameData{Name: m.originalText})
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m model) updateNoteEdit(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.noteInput.Blur()
		m.mode = ModeNormal
		return m, nil
	case tea.KeyCtrlS:
		text := strings.TrimRight(m.noteInput.Value(), "\n ")
		m.noteInput.Blur()
		m.mode = ModeNormal
		if text != m.originalText {
			m.app.store.SetComment(m.selected, text)
			m.recordAction(ActionSetComment, SetCommentData{Driver: m.selected, Text: text}, SetCommentData{Driver: m.selected, Text: m.originalText})
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

func (m *model) startFileInput(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.filename = ""
	if name := strings.TrimSpace(m.app.store.Snapshot().ProjectName); name != "" {
		m.filename = sanitizeFilename(name)
	}
}

func (m *model) fileFormat() exportFormat {
	switch m.fileOp {
	case FileOpExportSVG:
		return formatSVG
	case FileOpExportTXT:
		return formatTXT
	default:
		return formatPNG
	}
}

func (m model) updateFileInput(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.filename = ""
		m.errorMessage = ""
	case tea.KeyEnter:
		if strings.TrimSpace(m.filename) == "" {
			m.errorMessage = "filename required"
			return m, nil
		}
		path, err := m.app.config.GetSavePath(withExtension(strings.TrimSpace(m.filename), m.fileFormat()))
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		if _, err := os.Stat(path); err == nil && m.app.config.Confirmations {
			m.pendingExport = path
			m.confirmAction = ConfirmOverwriteFile
			m.mode = ModeConfirm
			return m, nil
		}
		m.export(path)
	case tea.KeyBackspace:
		if len(m.filename) > 0 {
			runes := []rune(m.filename)
			m.filename = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filename += string(msg.Runes)
	}
	return m, nil
}

func (m *model) export(path string) {
	err := exportChart(path, m.fileFormat(), m.app.store.Snapshot(), m.app.tr, m.theme, defaultExportWidth)
	if err != nil {
		m.app.logger.Error("export", "path", path, "err", err)
		m.errorMessage = err.Error()
		m.mode = ModeFileInput
		return
	}
	m.app.logger.Info("exported", "path", path)
	m.mode = ModeNormal
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Exported to %s", path)
	m.filename = ""
}

func (m model) updateConfirm(msg tea.KeyMsg) (model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmReset:
			m.resetAll()
		case ConfirmOverwriteFile:
			m.export(m.pendingExport)
			m.pendingExport = ""
		case ConfirmQuit:
			return m, tea.Quit
		}
	case "n", "esc":
		if m.confirmAction == ConfirmOverwriteFile {
			m.mode = ModeFileInput
		} else {
			m.mode = ModeNormal
		}
		m.pendingExport = ""
	}
	return m, nil
}

// copySummary puts the markdown summary on the system clipboard.
func (m *model) copySummary() {
	md := summaryMarkdown(m.app.store.Snapshot(), m.app.tr)
	if err := clipboard.WriteAll(md); err != nil {
		m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		return
	}
	m.successMessage = "Summary copied to clipboard"
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
