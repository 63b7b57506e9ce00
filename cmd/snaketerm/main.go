package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"gridsnake/game"
)

const (
	defaultSpeed = 10 // steps per second
	fastFactor   = 2
)

// Term runs one engine in a tcell screen
type Term struct {
	screen tcell.Screen
	cfg    game.Config
	engine *game.Engine
	audio  *Audio

	speed   int
	fast    bool
	paused  bool
	over    bool
	session int
	ticker  *time.Ticker
}

func NewTerm(cfg game.Config, speed int, mute bool) (*Term, error) {
	eng, err := game.NewEngine(cfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	t := &Term{
		screen:  screen,
		cfg:     cfg,
		engine:  eng,
		speed:   speed,
		session: 1,
	}

	if !mute {
		if t.audio, err = NewAudio(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	return t, nil
}

func (t *Term) period() time.Duration {
	p := time.Second / time.Duration(t.speed)
	if t.fast {
		p /= fastFactor
	}
	return p
}

// restart builds a fresh engine on the next seed
func (t *Term) restart() {
	cfg := t.cfg
	cfg.Seed += uint64(t.session)
	eng, err := game.NewEngine(cfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		log.Printf("restart failed: %v", err)
		return
	}
	t.engine = eng
	t.session++
	t.over = false
	log.Printf("session %d started, seed %d", t.session, cfg.Seed)
}

// step advances the engine once and reacts to its events
func (t *Term) step() {
	running := t.engine.Update()
	for _, ev := range t.engine.Events() {
		switch ev.Type {
		case game.EventAte:
			t.audio.Eat()
		case game.EventDied:
			t.audio.Die()
			log.Printf("%v", ev)
		case game.EventBoardFull:
			log.Printf("%v", ev)
		}
	}
	if !running {
		t.over = true
		log.Printf("game over after %d steps", t.engine.Step())
	}
}

func (t *Term) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch action(ev) {
		case actionQuit:
			return false
		case actionPause:
			t.paused = !t.paused
		case actionFaster:
			t.fast = !t.fast
			t.ticker.Reset(t.period())
		case actionRestart:
			if t.over {
				t.restart()
			}
		case actionSteer:
			if !t.paused && !t.over {
				t.engine.HandleKey(gameKey(ev))
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *Term) run() {
	t.ticker = time.NewTicker(t.period())
	defer t.ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	t.draw()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
			t.draw()

		case <-t.ticker.C:
			if !t.paused && !t.over {
				t.step()
			}
			t.draw()
		}
	}
}

func (t *Term) cleanup() {
	t.audio.Close()
	t.screen.Fini()
}

func main() {
	def := game.DefaultConfig()
	width := flag.Int("width", def.Width, "board width in cells")
	height := flag.Int("height", def.Height, "board height in cells")
	snakes := flag.Int("snakes", 2, "number of snakes")
	controllers := flag.String("controllers", "human-combined,astar", "comma-separated controller kinds, one or one per snake")
	size := flag.Int("size", def.SnakeSize, "initial snake length")
	mode := flag.String("mode", "normal", "normal or survival")
	growEvery := flag.Int("grow-every", def.SurvivalGrowEvery, "survival growth cadence in steps")
	selfGuard := flag.Int("self-guard", 0, "check self collision only above this length")
	speed := flag.Int("speed", defaultSpeed, "steps per second")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	logPath := flag.String("log", "", "write log output to this file")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	// Keep log lines off the tcell screen
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := buildConfig(*width, *height, *snakes, *controllers, *size, *mode, *growEvery, *selfGuard, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		os.Exit(2)
	}
	if *speed <= 0 {
		fmt.Fprintf(os.Stderr, "Invalid options: speed must be positive\n")
		os.Exit(2)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	term, err := NewTerm(cfg, *speed, *mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer term.cleanup()

	log.Printf("snaketerm: %dx%d, %d snakes, %s mode, seed %d",
		cfg.Width, cfg.Height, cfg.NumSnakes, cfg.Mode, cfg.Seed)
	term.run()
}

func buildConfig(width, height, snakes int, controllers string, size int, mode string, growEvery, selfGuard int, seed uint64) (game.Config, error) {
	kinds, err := game.ParseKinds(controllers)
	if err != nil {
		return game.Config{}, err
	}
	m, err := game.ParseMode(mode)
	if err != nil {
		return game.Config{}, err
	}
	cfg := game.Config{
		Width:                  width,
		Height:                 height,
		NumSnakes:              snakes,
		Controllers:            kinds,
		SnakeSize:              size,
		Mode:                   m,
		SurvivalGrowEvery:      growEvery,
		SelfCollisionMinLength: selfGuard,
		Seed:                   seed,
	}
	return cfg, cfg.Validate()
}
