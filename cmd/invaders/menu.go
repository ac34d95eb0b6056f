package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rogue-invaders/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants from an interactive menu",
	Long: `Start with a variant picker.

Use arrow keys or j/k to navigate, Enter to select a variant.
Quitting a game returns to the picker; the session history and high
scores of this run are kept between games.

Examples:
  invaders menu
  invaders menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	res, err := openResources(io.Discard)
	if err != nil {
		fatal(err)
	}
	defer res.close()

	cfg := runtimeConfig(terminalSize())
	lastID := ""

	// Menu loop
	for {
		result, err := tui.RunMenu(res.store, cfg, lastID)
		if err != nil {
			res.close()
			fatal(err)
		}

		// Update config with any size changes
		cfg = result.Config

		if result.Quit {
			return
		}

		variant, err := resolveVariant([]string{result.GameID}, "")
		if err != nil {
			res.close()
			fatal(err)
		}

		game, err := res.gameFor(variant)
		if err != nil {
			res.close()
			fatal(err)
		}

		res.logger.Info("variant selected", "game", game.ID())
		if err := tui.Run(game, res.store, res.logger, cfg); err != nil {
			res.close()
			fatal(fmt.Errorf("running %s: %w", game.ID(), err))
		}
		lastID = game.ID()
	}
}
