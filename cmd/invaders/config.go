package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rogue-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [id]",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would run with as YAML, after the
config file and the variant are applied. The output is a valid --config file.

Examples:
  invaders config
  invaders config invaders_rapid
  invaders config --config ./my-invaders.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	variant, err := resolveVariant(args, flagVariant)
	if err != nil {
		fatal(err)
	}

	cfg, err := loadConfig(variant)
	if err != nil {
		fatal(err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatal(err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fatal(err)
	}
}
