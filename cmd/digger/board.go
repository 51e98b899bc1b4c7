package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-digger/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse high scores interactively",
	Long: `Open the interactive scoreboard.

Controls:
  Up/Down/j/k  - Scroll
  Tab          - Next game
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		store := openStore()
		if store != nil {
			defer store.Close()
		}
		w, h := terminalSize()
		return tui.RunScoreboard(store, w, h)
	},
}
