package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rogue-invaders/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window [id]",
	Short: "Play in a desktop window",
	Long: `Start the game in an 800x600 desktop window.

Controls are the same as in the terminal. Movement keys are read while held,
and the menu buttons can be clicked.

Examples:
  invaders window
  invaders window invaders_rapid --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, args []string) {
	variant, err := resolveVariant(args, flagVariant)
	if err != nil {
		fatal(err)
	}

	res, err := openResources(os.Stderr)
	if err != nil {
		fatal(err)
	}
	defer res.close()

	game, err := res.newGame(variant)
	if err != nil {
		res.close()
		fatal(err)
	}

	width, height := game.Playfield()
	if err := window.Run(game, res.store, res.logger, runtimeConfig(width, height)); err != nil {
		res.close()
		fatal(err)
	}
}
