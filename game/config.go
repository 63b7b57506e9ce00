package game

import (
	"strings"

	"github.com/pkg/errors"

	"gridsnake/board"
)

// Mode selects the death and growth rules
type Mode int

const (
	ModeNormal   Mode = iota // dead snakes shrink away and are removed
	ModeSurvival             // as Normal, plus cadence growth for alive snakes
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSurvival:
		return "survival"
	default:
		return "unknown"
	}
}

// ParseMode accepts "normal" or "survival", case-insensitive
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return ModeNormal, nil
	case "survival":
		return ModeSurvival, nil
	}
	return ModeNormal, errors.Errorf("unknown mode %q", s)
}

// Kind names a controller variant
type Kind string

const (
	KindHumanArrow    Kind = "human-arrow"
	KindHumanWASD     Kind = "human-wasd"
	KindHumanCombined Kind = "human-combined"
	KindGreedy        Kind = "greedy"
	KindAStar         Kind = "astar"
)

// Kinds lists every accepted controller kind
var Kinds = []Kind{KindHumanArrow, KindHumanWASD, KindHumanCombined, KindGreedy, KindAStar}

// ParseKind validates a controller kind string
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", errors.Errorf("unknown controller kind %q", s)
}

// ParseKinds splits a comma-separated list of controller kinds
func ParseKinds(s string) ([]Kind, error) {
	var out []Kind
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := ParseKind(part)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// IsHuman reports whether the kind is driven by key events
func (k Kind) IsHuman() bool {
	return k == KindHumanArrow || k == KindHumanWASD || k == KindHumanCombined
}

// Defaults
const (
	DefaultWidth             = 40
	DefaultHeight            = 30
	DefaultSnakeSize         = 3
	DefaultSurvivalGrowEvery = 10
	MaxSnakes                = 12 // spawn slots available on the board edge
)

// Spawn places one snake: start cell and initial heading
type Spawn struct {
	Cell      board.Cell
	Direction board.Cell
}

// Config holds every construction parameter the engine consumes
type Config struct {
	Width, Height int
	NumSnakes     int

	// Controllers is per snake; a single entry applies to all snakes
	Controllers []Kind

	SnakeSize int
	Mode      Mode

	// SurvivalGrowEvery is the step cadence of survival growth
	SurvivalGrowEvery int

	// SelfCollisionMinLength: self-collision is only checked once the body is
	// longer than this. 0 checks always.
	SelfCollisionMinLength int

	Seed uint64

	// Spawns overrides the edge spawn layout when non-empty
	Spawns []Spawn
}

// DefaultConfig returns a single greedy snake on a 40x30 board
func DefaultConfig() Config {
	return Config{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		NumSnakes:         1,
		Controllers:       []Kind{KindGreedy},
		SnakeSize:         DefaultSnakeSize,
		Mode:              ModeNormal,
		SurvivalGrowEvery: DefaultSurvivalGrowEvery,
	}
}

// ControllerFor returns the controller kind of the i-th snake
func (c Config) ControllerFor(i int) Kind {
	if len(c.Controllers) == 1 {
		return c.Controllers[0]
	}
	return c.Controllers[i]
}

// Validate reports the first out-of-range parameter
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("board must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.NumSnakes <= 0 {
		return errors.Errorf("need at least one snake, got %d", c.NumSnakes)
	}
	if len(c.Spawns) == 0 && c.NumSnakes > MaxSnakes {
		return errors.Errorf("at most %d snakes supported, got %d", MaxSnakes, c.NumSnakes)
	}
	if len(c.Spawns) > 0 && len(c.Spawns) != c.NumSnakes {
		return errors.Errorf("%d spawns given for %d snakes", len(c.Spawns), c.NumSnakes)
	}
	if c.SnakeSize <= 0 {
		return errors.Errorf("snake size must be positive, got %d", c.SnakeSize)
	}
	if c.SnakeSize*c.NumSnakes > c.Width*c.Height {
		return errors.Errorf("%d snakes of size %d do not fit a %dx%d board",
			c.NumSnakes, c.SnakeSize, c.Width, c.Height)
	}
	if len(c.Controllers) != 1 && len(c.Controllers) != c.NumSnakes {
		return errors.Errorf("%d controller kinds given for %d snakes", len(c.Controllers), c.NumSnakes)
	}
	for _, k := range c.Controllers {
		if _, err := ParseKind(string(k)); err != nil {
			return err
		}
	}
	if c.Mode != ModeNormal && c.Mode != ModeSurvival {
		return errors.Errorf("unknown mode %d", int(c.Mode))
	}
	if c.Mode == ModeSurvival && c.SurvivalGrowEvery <= 0 {
		return errors.Errorf("survival growth cadence must be positive, got %d", c.SurvivalGrowEvery)
	}
	if c.SelfCollisionMinLength < 0 {
		return errors.Errorf("self-collision length guard must not be negative, got %d", c.SelfCollisionMinLength)
	}
	seen := make(map[board.Cell]int, len(c.Spawns))
	for i, s := range c.Spawns {
		if !s.Cell.InBounds(c.Width, c.Height) {
			return errors.Errorf("spawn %d at %v is off the board", i, s.Cell)
		}
		if !s.Direction.IsDirection() {
			return errors.Errorf("spawn %d direction %v is not a unit direction", i, s.Direction)
		}
		if j, dup := seen[s.Cell]; dup {
			return errors.Errorf("spawns %d and %d share cell %v", j, i, s.Cell)
		}
		seen[s.Cell] = i
	}
	return nil
}
