package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-digger/internal/core"
	"github.com/vovakirdan/tui-digger/internal/registry"
	"github.com/vovakirdan/tui-digger/internal/storage"
)

// defaultHold is how long a direction stays held after its last key event.
// It has to bridge the terminal's initial auto-repeat delay.
const defaultHold = 350 * time.Millisecond

// statusDuration is how long a transient footer message stays visible.
const statusDuration = 2 * time.Second

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options tunes the play session. The zero value is usable.
type Options struct {
	Logger        *log.Logger
	HoldTicks     int    // Ticks a direction stays held; 0 derives it from the tick rate
	ScreenshotDir string // Defaults to ~/.digger/screenshots
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keys       GameKeyMap
	mapper     *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	held       heldDirection
	gameState  core.GameState
	highScore  int

	screenshotDir string
	status        string
	statusTicks   int

	quitting   bool
	scoreSaved bool // Score already recorded for the current game over
}

// NewModel creates a model for the given game and resets the game.
// store may be nil, in which case scores are not recorded.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	hold := opts.HoldTicks
	if hold <= 0 {
		hold = ticksFor(defaultHold, cfg.TickRate)
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = defaultScreenshotDir()
	}

	keys := DefaultGameKeyMap()
	m := Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		store:         store,
		config:        cfg,
		logger:        logger,
		keys:          keys,
		mapper:        NewKeyMapper(keys),
		help:          help.New(),
		inputFrame:    core.NewInputFrame(),
		held:          newHeldDirection(hold),
		screenshotDir: dir,
	}
	m.help.Width = cfg.ScreenW

	m.game.Reset(m.config)
	m.gameState = m.game.State()

	if store != nil {
		high, err := store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not read high score", "game", game.ID(), "error", err)
		}
		m.highScore = high
	}
	return m
}

// playRows is the screen height left for the game after the footer line.
func playRows(h int) int {
	if h <= 1 {
		return h
	}
	return h - 1
}

func ticksFor(d time.Duration, tickRate int) int {
	n := int(d * time.Duration(tickRate) / time.Second)
	if n < 1 {
		n = 1
	}
	return n
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
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.takeScreenshot()
		return m, nil
	}

	action := m.mapper.MapKey(msg)
	switch {
	case action.IsDirectional() && m.gameState.Paused:
		// The pause menu moves one entry per key press
		m.inputFrame.Set(action)
	case action.IsDirectional():
		m.held.press(action)
	case action == core.ActionPause:
		// A paused game should not resume walking on its own
		m.held.release()
		m.inputFrame.Set(action)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize only resizes the screen. The game lays itself out on every
// render, so there is no need to reset it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.gameState.Paused {
		m.held.apply(&m.inputFrame)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		if !m.scoreSaved {
			m.saveScore()
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	if m.statusTicks > 0 {
		m.statusTicks--
		if m.statusTicks == 0 {
			m.status = ""
		}
	}

	if m.gameState.Quit {
		m.quitting = true
		m.logger.Info("session ended", "score", m.gameState.Score, "level", m.gameState.Level)
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) saveScore() {
	st := m.gameState
	m.logger.Info("game over", "score", st.Score, "level", st.Level)
	if st.Score <= 0 || m.store == nil {
		return
	}

	if _, err := m.store.SaveScore(m.game.ID(), st.Score, st.Level); err != nil {
		m.logger.Warn("could not save score", "error", err)
		m.setStatus("score not saved")
		return
	}
	if st.Score > m.highScore {
		m.highScore = st.Score
		m.setStatus("new high score!")
	}
}

func (m *Model) takeScreenshot() {
	m.game.Render(m.screen)

	path, err := SaveScreenshot(m.screenshotDir, m.game.ID(), m.screen, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.setStatus("screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)

	if err := copyToClipboard(m.screen); err != nil {
		m.logger.Debug("clipboard unavailable", "error", err)
		m.setStatus("saved " + path)
		return
	}
	m.setStatus("saved and copied to clipboard")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTicks = ticksFor(statusDuration, m.config.TickRate)
}

// View renders the game screen and the footer line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	right := fmt.Sprintf("Best: %d", m.highScore)
	if m.status != "" {
		right = m.status
	}
	left := m.help.View(m.keys)

	gap := m.config.ScreenW - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return footerStyle.Render(right)
	}
	return footerStyle.Render(left + fmt.Sprintf("%*s", gap, "") + right)
}

// Run starts the Bubble Tea program for the given game and blocks until it
// exits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
