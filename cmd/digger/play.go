package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-digger/internal/config"
	"github.com/vovakirdan/tui-digger/internal/core"
	"github.com/vovakirdan/tui-digger/internal/games/digger"
	"github.com/vovakirdan/tui-digger/internal/platform/tui"
	"github.com/vovakirdan/tui-digger/internal/registry"
	"github.com/vovakirdan/tui-digger/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Digger",
	Long: `Start a game of Digger.

Controls:
  Arrows/WASD  - Move and dig
  Space        - Fire
  Enter        - Start
  P/Esc        - Pause
  R            - Restart (after game over)
  Q            - Pause while playing, quit otherwise
  Ctrl+S       - Save a screenshot
  Ctrl+C       - Quit immediately

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  digger play
  digger play --difficulty hard
  digger play --config ./my-digger.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, playCmd, simCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runtimeConfig() core.RuntimeConfig {
	w, h := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Failure is not fatal: the game is
// played without recording scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without scores", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}

// parseDifficulty validates the --difficulty flag. Empty keeps the
// config file's own settings.
func parseDifficulty(s string) (config.DifficultyPreset, error) {
	p := config.ParsePreset(s)
	if s != "" && p == "" {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return p, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := parseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	return playGame(store, runtimeConfig(), preset)
}

func playGame(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) error {
	digger.SetConfigPath(flagConfig)
	digger.SetDifficultyPreset(string(preset))

	game, err := registry.Create(digger.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("session started", "seed", cfg.Seed, "fps", cfg.TickRate, "difficulty", string(preset))
	if err := tui.Run(game, store, cfg, tui.Options{Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
