package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-digger/internal/config"
	"github.com/vovakirdan/tui-digger/internal/games/digger"
	"github.com/vovakirdan/tui-digger/internal/platform/tui"
)

// runMenu is the launcher loop: after a game or the scoreboard the user
// returns to the menu until they quit.
func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := parseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	if preset == "" {
		preset = config.DifficultyNormal
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, digger.GameID, preset, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config
		preset = res.Preset

		switch res.Choice {
		case tui.MenuPlay:
			if err := playGame(store, cfg, preset); err != nil {
				return err
			}
		case tui.MenuScores:
			if err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
