package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rogue-invaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [id]",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Left/Right, A/D  - Move
  Space            - Shoot
  Enter            - Start (menu)
  S/R              - Restart (game over)
  P                - Pause
  Esc/B            - Back to menu
  M                - Toggle sound (menu)
  H                - Session history (menu)
  Q                - Quit (menu)
  Ctrl+S           - Save a text screenshot
  Ctrl+C           - Exit immediately

The menu buttons can also be clicked with the mouse.

Examples:
  invaders play
  invaders play invaders_classic
  invaders play --variant rapid --mute
  invaders play --seed 42 --log-file ./invaders.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	variant, err := resolveVariant(args, flagVariant)
	if err != nil {
		fatal(err)
	}

	// Logs would corrupt the alternate screen
	res, err := openResources(io.Discard)
	if err != nil {
		fatal(err)
	}
	defer res.close()

	game, err := res.newGame(variant)
	if err != nil {
		res.close()
		fatal(err)
	}

	if err := tui.Run(game, res.store, res.logger, runtimeConfig(terminalSize())); err != nil {
		res.close()
		fatal(err)
	}
}

// terminalSize returns the terminal size, or 80x24 when it is unknown.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
