package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rogue-invaders/internal/audio"
	"github.com/vovakirdan/rogue-invaders/internal/config"
	"github.com/vovakirdan/rogue-invaders/internal/core"
	"github.com/vovakirdan/rogue-invaders/internal/games/invaders"
	"github.com/vovakirdan/rogue-invaders/internal/logging"
	"github.com/vovakirdan/rogue-invaders/internal/registry"
	"github.com/vovakirdan/rogue-invaders/internal/storage"
)

// resolveVariant picks the rules variant from a registered game ID, or from
// the --variant flag when no ID is given.
func resolveVariant(args []string, variantFlag string) (config.Variant, error) {
	if len(args) > 0 {
		id := args[0]
		game, err := registry.Create(id)
		if err != nil {
			return "", fmt.Errorf("unknown game %q (run 'invaders list' to see variants)", id)
		}
		vg, ok := game.(interface{ Variant() config.Variant })
		if !ok {
			return "", fmt.Errorf("game %q has no variants", id)
		}
		return vg.Variant(), nil
	}

	if variantFlag == "" {
		return "", nil
	}
	v := config.ParseVariant(variantFlag)
	if v == "" {
		return "", fmt.Errorf("unknown variant %q (want one of %v)", variantFlag, config.Variants())
	}
	return v, nil
}

// loadConfig loads the configuration named by --config, or the default
// search path, applies the variant and validates the result.
func loadConfig(v config.Variant) (config.InvadersConfig, error) {
	return config.LoadVariant(flagConfig, v)
}

// resources are shared by every game a command runs.
type resources struct {
	store  *storage.Store
	logger *log.Logger
	sink   core.AudioSink
	close  func()
	games  map[config.Variant]*invaders.Game
}

// openResources builds the logger, audio sink and session history.
// logFallback receives logs when --log-file is not set.
func openResources(logFallback io.Writer) (*resources, error) {
	logger, closeLog, err := logging.Open(flagLogFile, logFallback)
	if err != nil {
		return nil, err
	}
	logging.SetVerbose(logger, flagVerbose)

	// The device is opened even when muted so sound can be enabled from the menu
	sink, closeAudio := audio.NewSink(true, logger)

	// The history is optional, the game still works without it
	store, err := storage.Open()
	if err != nil {
		logger.Warn("session history disabled", "err", err)
		store = nil
	}

	return &resources{
		store:  store,
		logger: logger,
		sink:   sink,
		close: func() {
			closeAudio()
			if store != nil {
				store.Close()
			}
			//nolint:errcheck // Best-effort close of the log file
			closeLog()
		},
	}, nil
}

// newGame builds a game of the given variant with the loaded configuration.
func (r *resources) newGame(v config.Variant) (*invaders.Game, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return nil, err
	}

	return invaders.New(
		invaders.WithConfig(cfg),
		invaders.WithVariant(v),
		invaders.WithAudio(r.sink),
		invaders.WithSound(!flagMute),
	), nil
}

// gameFor returns the game of variant v, building it on first use.
// Games are reused so their high scores last for the whole process.
func (r *resources) gameFor(v config.Variant) (*invaders.Game, error) {
	if g, ok := r.games[v]; ok {
		return g, nil
	}
	g, err := r.newGame(v)
	if err != nil {
		return nil, err
	}
	if r.games == nil {
		r.games = make(map[config.Variant]*invaders.Game)
	}
	r.games[v] = g
	return g, nil
}

// runtimeConfig returns the runtime settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fatal prints err and exits.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
