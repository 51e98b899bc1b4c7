package digger

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-digger/internal/config"
	"github.com/vovakirdan/tui-digger/internal/core"
	"github.com/vovakirdan/tui-digger/internal/registry"
)

// GameID is the registry identifier of the digger game.
const GameID = "digger"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives lifecycle events. Silent until SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by every digger game instance.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l.WithPrefix(GameID)
}

// Game adapts a World to the registry.Game interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.DiggerConfig
	world   *World
	dt      float64
}

// New creates a digger game. Call Reset before use.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return GameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Digger" }

// Reset loads configuration and builds a fresh world in the menu state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDigger(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultDiggerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDiggerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.dt = runtime.TickDuration()

	g.world = NewWorld(cfg, rand.New(rand.NewSource(runtime.Seed)))
	logger.Debug("reset", "seed", runtime.Seed, "grid", cfg.Grid, "preset", string(difficultyPreset))
}

// IntentsFromFrame maps an input frame to world intents. When several
// directions are held the priority is up, down, left, right.
func IntentsFromFrame(in core.InputFrame) Intents {
	intents := Intents{
		Fire:    in.Has(core.ActionFire),
		Pause:   in.Has(core.ActionPause),
		Confirm: in.Has(core.ActionConfirm),
		Restart: in.Has(core.ActionRestart),
		Quit:    in.Has(core.ActionQuit),
	}
	switch in.Direction() {
	case core.ActionUp:
		intents.Dir = DirUp
	case core.ActionDown:
		intents.Dir = DirDown
	case core.ActionLeft:
		intents.Dir = DirLeft
	case core.ActionRight:
		intents.Dir = DirRight
	}
	return intents
}

// Step advances the world by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.world.Update(g.dt, IntentsFromFrame(in))

	var names []string
	for _, e := range events {
		names = append(names, e.Kind.String())
		g.logEvent(e)
	}
	return core.StepResult{State: g.State(), Events: names}
}

func (g *Game) logEvent(e Event) {
	w := g.world
	switch e.Kind {
	case EventLevelCleared:
		logger.Info("level cleared", "level", e.Points, "score", w.Score())
	case EventPlayerKilled:
		logger.Info("player killed", "at", e.At, "lives", w.Lives())
	case EventGameOver:
		logger.Info("game over", "score", e.Points, "level", w.Level())
	case EventBonusStarted:
		logger.Debug("bonus started", "level", w.Level())
	case EventExtraLife:
		logger.Debug("extra life", "lives", w.Lives())
	}
}

// State returns the platform-neutral game state.
func (g *Game) State() core.GameState {
	w := g.world
	return core.GameState{
		Score:    w.Score(),
		Lives:    w.Lives(),
		Level:    w.Level(),
		GameOver: w.Round() == RoundGameOver,
		Paused:   w.Round() == RoundPaused,
		Quit:     w.Quit(),
	}
}

// World returns the simulation owned by the game.
func (g *Game) World() *World {
	return g.world
}

// Snapshot returns the current world snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
