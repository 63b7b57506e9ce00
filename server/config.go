package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"

	"gridsnake/game"
)

// Server configuration constants
const (
	// Server
	ServerPort    = ":8080"
	StaticDir     = "../client"
	WebSocketPath = "/ws"

	// Connections
	MaxPlayers    = 64 // pilot plus spectators
	IPCooldownSec = 2  // min seconds between connections from one IP

	// Game loop
	TickRate      = 10 // engine steps per second at normal speed
	FastFactor    = 2  // speed multiplier while "faster" is on
	LoopRate      = TickRate * FastFactor
	MaxQueuedKeys = 8 // pilot keys buffered between steps

	// Session restart
	RestartDelaySec = 3
)

// Snake colors palette, indexed by snake id
var PlayerColors = []string{
	"#e74c3c", "#3498db", "#2ecc71", "#f39c12", "#9b59b6",
	"#1abc9c", "#e67e22", "#e91e63", "#00bcd4", "#8bc34a",
	"#ff5722", "#607d8b",
}

// Environment overrides for the board, GRIDSNAKE_<NAME>
const (
	envPort        = "GRIDSNAKE_PORT"
	envStaticDir   = "GRIDSNAKE_STATIC_DIR"
	envWidth       = "GRIDSNAKE_WIDTH"
	envHeight      = "GRIDSNAKE_HEIGHT"
	envSnakes      = "GRIDSNAKE_SNAKES"
	envControllers = "GRIDSNAKE_CONTROLLERS"
	envSize        = "GRIDSNAKE_SIZE"
	envMode        = "GRIDSNAKE_MODE"
	envGrowEvery   = "GRIDSNAKE_GROW_EVERY"
	envSeed        = "GRIDSNAKE_SEED"
)

// loadGameConfig starts from the default board (one pilot, three AI snakes)
// and applies environment overrides
func loadGameConfig() (game.Config, error) {
	cfg := game.DefaultConfig()
	cfg.NumSnakes = 4
	cfg.Controllers = []game.Kind{game.KindHumanCombined, game.KindAStar, game.KindGreedy, game.KindAStar}

	ints := []struct {
		key string
		dst *int
	}{
		{envWidth, &cfg.Width},
		{envHeight, &cfg.Height},
		{envSnakes, &cfg.NumSnakes},
		{envSize, &cfg.SnakeSize},
		{envGrowEvery, &cfg.SurvivalGrowEvery},
	}
	for _, it := range ints {
		v := os.Getenv(it.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "%s", it.key)
		}
		*it.dst = n
	}

	if v := os.Getenv(envControllers); v != "" {
		kinds, err := game.ParseKinds(v)
		if err != nil {
			return cfg, errors.Wrap(err, envControllers)
		}
		cfg.Controllers = kinds
	} else if os.Getenv(envSnakes) != "" {
		// Snake count changed without kinds: keep the pilot, fill with A*
		kinds := []game.Kind{game.KindHumanCombined}
		for len(kinds) < cfg.NumSnakes {
			kinds = append(kinds, game.KindAStar)
		}
		cfg.Controllers = kinds
	}

	if v := os.Getenv(envMode); v != "" {
		m, err := game.ParseMode(v)
		if err != nil {
			return cfg, errors.Wrap(err, envMode)
		}
		cfg.Mode = m
	}

	if v := os.Getenv(envSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, errors.Wrap(err, envSeed)
		}
		cfg.Seed = seed
	}

	return cfg, cfg.Validate()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
