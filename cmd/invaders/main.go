// invaders is a Space Invaders style shooter for the terminal and the desktop.
//
// Usage:
//
//	invaders                   - Play in the terminal
//	invaders play [id]         - Play a variant in the terminal
//	invaders window [id]       - Play a variant in a desktop window
//	invaders menu              - Pick variants interactively
//	invaders list              - List registered variants
//	invaders config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load configuration from a YAML file
//	--variant <name>    - Rules variant: classic, formation, rapid
//	--mute              - Start with sound off
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rogue-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagVariant string
	flagMute    bool
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Rogue Invaders - shoot down descending enemy waves",
	Long: `Rogue Invaders is an arcade shooter. Move the ship along the bottom of
the playfield, shoot the enemy formation and survive as many waves as you can.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  menu     - Interactive variant picker
  list     - Show all variants
  config   - Print the effective configuration

Examples:
  invaders
  invaders play invaders_rapid
  invaders window --variant classic
  invaders config --variant rapid > my-invaders.yaml
  invaders play --config ./my-invaders.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		invaders.SetConfigPath(flagConfig)
	},
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "", "Rules variant: classic, formation, rapid")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
