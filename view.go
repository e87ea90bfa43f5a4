package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"octalysis/internal/state"
)

const (
	panelPadding     = 1
	sliderTop        = 4
	sliderLabelWidth = 16
	sliderBarOffset  = 2 + sliderLabelWidth + 1
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.help.ShowAll {
		return m.helpView()
	}
	if m.mode == ModeSummary {
		return m.summaryView()
	}

	paneCols, paneRows := m.chartPane()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.chartView(paneCols, paneRows), m.sidePanel(paneRows))

	var result strings.Builder
	result.WriteString(body)
	result.WriteString("\n")
	result.WriteString(ansi.Truncate(m.statusLine(), m.width, "…"))
	result.WriteString("\n")
	result.WriteString(ansi.Truncate(m.help.View(m.keys), m.width, "…"))
	return result.String()
}

func (m model) chartView(paneCols, paneRows int) string {
	block := lipgloss.NewStyle().Width(paneCols).Height(paneRows).MaxWidth(paneCols).MaxHeight(paneRows)
	if m.chart.Layout() == nil || paneCols == 0 || paneRows == 0 {
		return block.Render("")
	}
	cols, rows := m.chart.Size()
	canvas := NewCanvas(cols, rows)
	canvas.DrawChart(m.chart.Layout(), m.chart.Frame(time.Now()))

	ox, _ := m.chartOrigin()
	indent := strings.Repeat(" ", ox)
	lines := canvas.Render(m.theme)
	for i, line := range lines {
		lines[i] = indent + line
	}
	return block.Render(strings.Join(lines, "\n"))
}

func (m model) sidePanel(height int) string {
	tr := m.app.tr
	st := m.app.store.Snapshot()
	width := sidePanelWidth - 1

	var lines []string
	lines = append(lines, m.theme.titleStyle().Render(tr.T("app.title")))
	if name := strings.TrimSpace(st.ProjectName); name != "" {
		lines = append(lines, ansi.Truncate(name, width, "…"))
	} else {
		lines = append(lines, m.theme.mutedStyle().Render(tr.T("project.untitled")))
	}
	lines = append(lines, fmt.Sprintf("%s: %.2f", tr.T("project.totalScore"), state.TotalScore(st)))
	lines = append(lines, "")

	for _, d := range state.Drivers {
		lines = append(lines, m.sliderLine(d, st.Value(d)))
	}
	lines = append(lines, "")

	lines = append(lines, m.theme.titleStyle().Render(ansi.Truncate(tr.T("comments.title")+": "+tr.T(m.selected.LabelKey()), width, "…")))
	if m.mode == ModeNoteEdit {
		lines = append(lines, m.noteInput.View())
	} else if note := strings.TrimSpace(st.Comment(m.selected)); note != "" {
		lines = append(lines, lipgloss.NewStyle().Width(width).Render(note))
	} else {
		lines = append(lines, m.theme.mutedStyle().Render(tr.T("comments.empty")))
	}

	return m.theme.panelStyle(sidePanelWidth, height).MaxHeight(height).Render(strings.Join(lines, "\n"))
}

// sliderLine draws "▸ Label           ██████░░░░ 50". Mouse hit testing in
// sliderAt relies on the bar starting at sliderBarOffset.
func (m model) sliderLine(d state.Driver, value int) string {
	marker := "  "
	if d == m.selected {
		marker = "▸ "
	}
	label := ansi.Truncate(m.app.tr.T(d.LabelKey()), sliderLabelWidth, "…")
	label += strings.Repeat(" ", max(sliderLabelWidth-ansi.StringWidth(label), 0))

	filled := int(math.Round(float64(value) / state.MaxValue * sliderWidth))
	bar := m.theme.fg(m.theme.Edge).Render(strings.Repeat("█", filled)) +
		m.theme.fg(m.theme.Grid).Render(strings.Repeat("░", sliderWidth-filled))

	head := marker + label
	if d == m.selected {
		head = m.theme.selectedStyle().Render(head)
	}
	return fmt.Sprintf("%s %s %3d", head, bar, value)
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeNameInput:
		return "Mode: NAME | " + m.nameInput.View() + " | Enter=save, Esc=cancel"
	case ModeNoteEdit:
		return fmt.Sprintf("Mode: NOTE | %s | Ctrl+S=save, Esc=cancel", m.app.tr.T(m.selected.LabelKey()))
	case ModeFileInput:
		var opStr string
		switch m.fileOp {
		case FileOpExportPNG:
			opStr = "Export PNG"
		case FileOpExportSVG:
			opStr = "Export SVG"
		case FileOpExportTXT:
			opStr = "Export TXT"
		}
		if m.errorMessage != "" {
			return fmt.Sprintf("Mode: FILE | %s | %s filename: %s█ | Enter=retry, Esc=cancel",
				m.theme.errorStyle().Render("ERROR: "+m.errorMessage), opStr, m.filename)
		}
		return fmt.Sprintf("Mode: FILE | %s filename: %s█ | Enter=confirm, Esc=cancel", opStr, m.filename)
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmReset:
			message = "Reset all drives, notes and the project name? (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.pendingExport)
		case ConfirmQuit:
			message = "Quit? (y/n)"
		}
		return "Mode: CONFIRM | " + message
	}

	st := m.app.store.Snapshot()
	status := fmt.Sprintf("Mode: %s | %s %d", m.modeString(), m.app.tr.T(m.selected.LabelKey()), st.Value(m.selected))
	if m.successMessage != "" {
		status += " | " + m.successMessage
	}
	if m.errorMessage != "" {
		status += " | " + m.theme.errorStyle().Render("ERROR: "+m.errorMessage)
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		if m.chart.Dragging() {
			return "DRAG"
		}
		return "NORMAL"
	case ModeNameInput:
		return "NAME"
	case ModeNoteEdit:
		return "NOTE"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	case ModeSummary:
		return "SUMMARY"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	tr := m.app.tr
	lines := []string{
		m.theme.titleStyle().Render(tr.T("app.title")),
		tr.T("app.subtitle"),
		"",
		"Drag a handle on the chart, or click along an axis, to set a drive.",
		"Click a slider bar to jump to a value.",
		"",
		m.help.View(m.keys),
		"",
		m.theme.mutedStyle().Render("? to close"),
	}
	return lipgloss.NewStyle().Padding(1, 2).MaxHeight(m.height).Render(strings.Join(lines, "\n"))
}

func (m model) summaryView() string {
	lines := strings.Split(m.summary, "\n")
	if len(lines) > m.height-1 {
		lines = lines[:max(m.height-1, 0)]
	}
	return strings.Join(lines, "\n") + "\n" + m.theme.mutedStyle().Render("Esc/v to close")
}
