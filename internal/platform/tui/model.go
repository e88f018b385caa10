package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/logging"
	"github.com/vovakirdan/precision-drop/internal/sim"
	"github.com/vovakirdan/precision-drop/internal/storage"
)

// helpRows is the space reserved below the playfield for the help bar.
const helpRows = 1

// Model is the Bubble Tea model for a play session.
type Model struct {
	session    *sim.Session
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	state      core.RunState
	quitting   bool
	runSaved   bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model driving session.
func NewModel(session *sim.Session, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	return Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		store:      store,
		logger:     logging.Component(logger, "tui"),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-helpRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.state.GameOver {
		if err := m.session.Reset(); err != nil {
			m.logger.Error("restart failed", "err", err)
			m.quitting = true
			return m, tea.Quit
		}
		m.state = m.session.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.state = m.session.Step(m.inputFrame)
	if m.state.GameOver {
		m.saveRun()
	}

	// Clear input for next frame
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the run once, when it scored anything.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil || m.state.Score == 0 {
		return
	}
	m.runSaved = true
	_, err := m.store.SaveRun(storage.RunEntry{
		Mode:       storage.ModePlay,
		Rule:       m.session.Game().Flow.Rule().ID(),
		Score:      m.state.Score,
		Passes:     m.state.Passes,
		Smashes:    m.state.Smashes,
		Bounces:    m.state.Bounces,
		BestStreak: m.session.BestStreak(),
		Duration:   m.session.Elapsed(),
		Seed:       m.config.Seed,
	})
	if err != nil {
		m.logger.Warn("cannot save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".precision-drop", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("drop_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.session.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// State returns the last observed run state.
func (m Model) State() core.RunState { return m.state }

// Run starts the Bubble Tea program for session and returns the final state.
func Run(session *sim.Session, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (core.RunState, error) {
	model := NewModel(session, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.RunState{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return core.RunState{}, nil
}
