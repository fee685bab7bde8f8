package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/text-or-die/internal/audio"
	"github.com/vovakirdan/text-or-die/internal/core"
	"github.com/vovakirdan/text-or-die/internal/game"
)

// Model is the Bubble Tea model for running a game session.
type Model struct {
	session  *game.Session
	player   audio.Player
	logger   *log.Logger
	screen   *core.Screen
	scene    *Scene
	keys     *KeyMapper
	help     help.Model
	config   core.RuntimeConfig
	lastTick time.Time
	clock    float64 // Seconds of play, drives wave and cursor animation
	wasOver  bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, player audio.Player, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if player == nil {
		player = audio.Silent{}
	}
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		session: session,
		player:  player,
		logger:  logger,
		screen:  core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		scene:   NewScene(),
		keys:    NewKeyMapper(),
		help:    help.New(),
		config:  cfg,
	}
	m.help.Width = cfg.ScreenW
	m.applyViewport()
	return m
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey feeds keyboard input to the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	for _, ev := range m.keys.MapKey(msg) {
		if ev.Kind == core.EventQuit {
			m.quitting = true
			return m, tea.Quit
		}

		outcome, ok := m.session.Handle(ev)
		if ok {
			m.player.Cue(cueFor(outcome))
		}
	}
	m.keys.Keys.SetGameOver(m.session.Round().IsGameOver())

	return m, nil
}

// handleResize processes window resize events. The session keeps its state;
// only the camera viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	m.applyViewport()
	return m, nil
}

func (m *Model) applyViewport() {
	snap := m.session.Snapshot()
	height, rest := m.scene.Viewport(m.screen.Height(), snap.BlockHeight)
	m.session.SetViewport(height, rest)
}

// handleTick advances the session by the measured frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now
	m.clock += dt

	m.session.Update(dt)

	over := m.session.Round().IsGameOver()
	if over && !m.wasOver {
		m.player.Cue(audio.CueGameOver)
		m.logger.Info("final score", "score", m.session.Round().Score(), "round", m.session.Round().Round())
	}
	m.wasOver = over
	m.keys.Keys.SetGameOver(over)

	return m, tickCmd(m.config.TickRate)
}

// cueFor maps a submission outcome to its sound.
func cueFor(o game.Outcome) audio.CueKind {
	switch o {
	case game.OutcomeCorrect:
		return audio.CueCorrect
	case game.OutcomeDuplicate:
		return audio.CueDuplicate
	default:
		return audio.CueWrong
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.scene.Draw(m.screen, m.session.Snapshot(), m.clock)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".textordie", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("textordie_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scene.Draw(m.screen, m.session.Snapshot(), m.clock)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys))
}

// Run starts the Bubble Tea program for the session.
func Run(session *game.Session, player audio.Player, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, player, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
