package main

import (
	"log"
	"sync"
	"time"

	"gridsnake/game"
)

// GameLoop drives the current session at a fixed tick rate and fans state
// out to every connection
type GameLoop struct {
	mu        sync.Mutex // guards everything below
	cfg       game.Config
	conns     *ConnManager
	session   *Session
	sessions  int
	pilotID   string
	pilotName string
	tickCount int
}

// NewGameLoop creates a game loop with its first session
func NewGameLoop(cfg game.Config, conns *ConnManager) (*GameLoop, error) {
	s, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return &GameLoop{
		cfg:      cfg,
		conns:    conns,
		session:  s,
		sessions: 1,
	}, nil
}

// Run starts the fixed-timestep loop. Blocks until process exits.
func (gl *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / LoopRate)
	defer ticker.Stop()
	log.Printf("game loop started at %d steps/sec (session %s)", TickRate, gl.session.ID)

	for range ticker.C {
		gl.tick()
	}
}

// tick runs once per loop period. The engine steps every FastFactor loop
// ticks, or on every one while fast mode is on.
func (gl *GameLoop) tick() {
	gl.mu.Lock()
	gl.tickCount++
	s := gl.session

	// 1. Finished session: wait out the restart delay
	if s.over {
		s.overTicks++
		if s.overTicks < RestartDelaySec*LoopRate {
			gl.mu.Unlock()
			return
		}
		restarted := gl.restart()
		gl.mu.Unlock()
		if restarted {
			gl.welcomeAll()
		}
		return
	}

	// 2. Pause and speed
	if s.paused || (!s.fast && gl.tickCount%FastFactor != 0) {
		gl.mu.Unlock()
		return
	}

	// 3. Step the engine
	events, running := s.Step()
	state := s.State()

	var over *GameOverMsg
	if !running {
		s.over = true
		winner, score := s.Winner()
		over = &GameOverMsg{Type: MsgOver, Winner: winner, Score: score, Restart: RestartDelaySec}
		log.Printf("session %s over after %d steps, winner %s with %d",
			s.ID, s.Engine.Step(), s.Roster.Name(winner), score)
	}
	roster := s.Roster
	gl.mu.Unlock()

	// 4. Log notable events
	for _, ev := range events {
		switch ev.Type {
		case game.EventDied:
			log.Printf("snake %d (%s) died at (%d,%d) on step %d",
				ev.SnakeID, roster.Name(ev.SnakeID), ev.Cell.X, ev.Cell.Y, ev.Step)
		case game.EventBoardFull:
			log.Printf("board full on step %d, no food placed", ev.Step)
		}
	}

	// 5. Broadcast state, then game over
	gl.broadcast(state)
	if over != nil {
		gl.broadcast(*over)
	}
}

// restart replaces the finished session. Caller must hold gl.mu.
func (gl *GameLoop) restart() bool {
	cfg := gl.cfg
	cfg.Seed += uint64(gl.sessions)
	s, err := NewSession(cfg)
	if err != nil {
		log.Printf("session restart failed: %v", err)
		gl.session.overTicks = 0
		return false
	}
	if gl.pilotID != "" {
		s.Roster.SetPilotName(gl.pilotName)
	}
	gl.session = s
	gl.sessions++
	log.Printf("session %s started (#%d)", s.ID, gl.sessions)
	return true
}

// Join registers a joined connection. The first joiner pilots: its keys
// steer the human snakes and it controls pause and speed.
func (gl *GameLoop) Join(c *Conn) WelcomeMsg {
	gl.mu.Lock()
	defer gl.mu.Unlock()

	role := RoleSpectator
	if gl.pilotID == "" || gl.pilotID == c.ID {
		gl.pilotID = c.ID
		gl.pilotName = c.Name
		gl.session.Roster.SetPilotName(c.Name)
		role = RolePilot
		log.Printf("pilot is %s (%s)", c.Name, c.ID)
	}
	return gl.welcomeFor(c.ID, role)
}

// Leave frees the pilot seat if c held it
func (gl *GameLoop) Leave(c *Conn) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if gl.pilotID == c.ID {
		gl.pilotID = ""
		log.Printf("pilot %s left", c.ID)
	}
}

// Handle routes a client message. Spectator input is ignored.
func (gl *GameLoop) Handle(c *Conn, msg ClientMessage) {
	if msg.Type == MsgJoin {
		_ = c.Send(gl.Join(c))
		return
	}

	gl.mu.Lock()
	defer gl.mu.Unlock()
	if c.ID != gl.pilotID {
		return
	}
	s := gl.session
	switch msg.Type {
	case MsgKey:
		s.QueueKey(game.ParseKey(msg.Key))
	case MsgPause:
		s.paused = !s.paused
	case MsgFaster:
		s.fast = !s.fast
	}
}

// welcomeFor builds the welcome for one connection. Caller must hold gl.mu.
func (gl *GameLoop) welcomeFor(id, role string) WelcomeMsg {
	return WelcomeMsg{
		Type:    MsgWelcome,
		ID:      id,
		Session: gl.session.ID,
		Width:   gl.session.Engine.Width(),
		Height:  gl.session.Engine.Height(),
		Role:    role,
	}
}

// Welcome returns the greeting for a fresh connection
func (gl *GameLoop) Welcome(c *Conn) WelcomeMsg {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	return gl.welcomeFor(c.ID, RoleSpectator)
}

// welcomeAll re-greets every connection after a session restart
func (gl *GameLoop) welcomeAll() {
	for _, c := range gl.conns.Snapshot() {
		gl.mu.Lock()
		role := RoleSpectator
		if c.ID == gl.pilotID {
			role = RolePilot
		}
		msg := gl.welcomeFor(c.ID, role)
		gl.mu.Unlock()
		_ = c.Send(msg)
	}
}

// broadcast sends msg to every connected client
func (gl *GameLoop) broadcast(msg interface{}) {
	for _, c := range gl.conns.Snapshot() {
		if err := c.Send(msg); err != nil {
			log.Printf("send error to %s: %v", c.ID, err)
		}
	}
}
