package main

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"octalysis/internal/state"
	"octalysis/internal/storage"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI(app *App) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.open(ctx); err != nil {
		return err
	}
	defer app.Close()

	saver := storage.NewSaver(app.db, storage.SaverOpts{Logger: app.logger})
	unsubscribe := app.store.Subscribe(saver.Notify)

	m := initialModel(app)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	watcher, err := storage.NewWatcher(app.db, storage.WatcherConfig{Logger: app.logger})
	if err != nil {
		app.logger.Warn("watch disabled", "err", err)
	} else {
		go watcher.Run(ctx, func(st state.AppState) {
			p.Send(externalStateMsg{state: st})
		})
	}

	_, runErr := p.Run()

	cancel()
	if watcher != nil {
		_ = watcher.Close()
	}
	m.chart.Unmount()
	unsubscribe()
	if err := saver.Close(); err != nil {
		app.logger.Error("final save", "err", err)
		if runErr == nil {
			runErr = err
		}
	}
	return runErr
}

func initialModel(app *App) model {
	name := textinput.New()
	name.Placeholder = app.tr.T("project.placeholder")
	name.CharLimit = 120

	note := textarea.New()
	note.ShowLineNumbers = false
	note.SetHeight(6)

	return model{
		app:       app,
		mode:      ModeNormal,
		chart:     NewChart(app.store, app.tr),
		theme:     themeFor(app.config.Theme),
		keys:      newKeyMap(),
		help:      help.New(),
		nameInput: name,
		noteInput: note,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// animate schedules the next frame while the outline is tweening.
func (m model) animate() (model, tea.Cmd) {
	if m.ticking || !m.chart.Animating(time.Now()) {
		return m, nil
	}
	m.ticking = true
	return m, frameTick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next, anim := next.animate()
	return next, tea.Batch(cmd, anim)
}

func (m model) update(msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cols, rows := m.chartPane()
		m.chart.Resize(cols, rows)
		m.noteInput.SetWidth(max(sidePanelWidth-4, 10))
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.ticking = false
		return m, nil

	case externalStateMsg:
		m.app.store.Replace(msg.state)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		if m.mode != ModeNormal || m.help.ShowAll {
			m.finishDrag()
		}
		return m, cmd
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.mode {
	case ModeNameInput:
		return m.updateNameInput(msg)
	case ModeNoteEdit:
		return m.updateNoteEdit(msg)
	case ModeFileInput:
		return m.updateFileInput(msg)
	case ModeConfirm:
		return m.updateConfirm(msg)
	case ModeSummary:
		switch msg.String() {
		case "esc", "q", "v", "enter":
			m.mode = ModeNormal
			m.summary = ""
		}
		return m, nil
	}
	return m.updateNormal(msg)
}
