package main

import "gridsnake/game"

// Protocol uses single-character keys to minimize wire size. Frames are JSON
// text by default; clients connecting with ?enc=msgpack get the same
// structures as binary msgpack frames.
//
// Message type constants (value of "t" field):
//   Client → Server:
//     "j" = join    {"t":"j","n":"PlayerName"}
//     "k" = key     {"t":"k","k":"ArrowUp"}   (browser KeyboardEvent.key)
//     "p" = pause   {"t":"p"}                 toggle
//     "f" = faster  {"t":"f"}                 toggle
//   Server → Client:
//     "w" = welcome {"t":"w","i":"conn","g":"session","x":40,"y":30,"r":"pilot"}
//     "s" = state   {"t":"s","n":12,"f":[x,y],"s":[snakes],"p":0,"x":1}
//     "o" = over    {"t":"o","w":2,"p":7,"r":3}
//     "e" = error   {"t":"e","m":"text"}
//
// SnakeDTO: {"i":0,"n":"name","k":"astar","s":[[x,y],...],"c":"#color","p":score,"a":1}

// Message type identifiers
const (
	MsgJoin    = "j"
	MsgKey     = "k"
	MsgPause   = "p"
	MsgFaster  = "f"
	MsgWelcome = "w"
	MsgState   = "s"
	MsgOver    = "o"
	MsgError   = "e"
)

// Roles sent in the welcome message
const (
	RolePilot     = "pilot"
	RoleSpectator = "spectator"
)

// ClientMessage is the base incoming message from the browser
type ClientMessage struct {
	Type string `json:"t" msgpack:"t"`
	Name string `json:"n,omitempty" msgpack:"n,omitempty"`
	Key  string `json:"k,omitempty" msgpack:"k,omitempty"`
}

// WelcomeMsg is sent on connect and again after each join or session restart
type WelcomeMsg struct {
	Type    string `json:"t" msgpack:"t"`
	ID      string `json:"i" msgpack:"i"`
	Session string `json:"g" msgpack:"g"`
	Width   int    `json:"x" msgpack:"x"`
	Height  int    `json:"y" msgpack:"y"`
	Role    string `json:"r" msgpack:"r"`
}

// SnakeDTO is the compact snake for per-tick state updates.
// Segments are [x,y] pairs, head first.
type SnakeDTO struct {
	ID       int      `json:"i" msgpack:"i"`
	Name     string   `json:"n" msgpack:"n"`
	Kind     string   `json:"k" msgpack:"k"`
	Segments [][2]int `json:"s" msgpack:"s"`
	Color    string   `json:"c" msgpack:"c"`
	Score    int      `json:"p" msgpack:"p"`
	Alive    int      `json:"a" msgpack:"a"` // 0 or 1
}

// StateMsg is the per-step state update, identical for every client
type StateMsg struct {
	Type   string     `json:"t" msgpack:"t"`
	Step   uint64     `json:"n" msgpack:"n"`
	Food   *[2]int    `json:"f,omitempty" msgpack:"f,omitempty"`
	Snakes []SnakeDTO `json:"s" msgpack:"s"`
	Paused int        `json:"p" msgpack:"p"`
	Speed  int        `json:"x" msgpack:"x"`
}

// GameOverMsg announces the end of a session.
// w = winning snake id (-1 if none), p = its score, r = seconds until restart
type GameOverMsg struct {
	Type    string `json:"t" msgpack:"t"`
	Winner  int    `json:"w" msgpack:"w"`
	Score   int    `json:"p" msgpack:"p"`
	Restart int    `json:"r" msgpack:"r"`
}

// ErrorMsg is sent right before the server drops a connection
type ErrorMsg struct {
	Type    string `json:"t" msgpack:"t"`
	Message string `json:"m" msgpack:"m"`
}

// newStateMsg flattens an engine snapshot into the wire form
func newStateMsg(snap game.Snapshot, roster *Roster, paused bool, speed int) StateMsg {
	msg := StateMsg{
		Type:   MsgState,
		Step:   snap.Step,
		Snakes: make([]SnakeDTO, 0, len(snap.Snakes)),
		Speed:  speed,
	}
	if paused {
		msg.Paused = 1
	}
	if snap.HasFood {
		msg.Food = &[2]int{snap.Food.X, snap.Food.Y}
	}
	for _, s := range snap.Snakes {
		segs := make([][2]int, len(s.Body))
		for i, c := range s.Body {
			segs[i] = [2]int{c.X, c.Y}
		}
		dto := SnakeDTO{
			ID:       s.ID,
			Name:     roster.Name(s.ID),
			Kind:     string(s.Kind),
			Segments: segs,
			Color:    roster.Color(s.ID),
			Score:    s.Score,
		}
		if s.Alive {
			dto.Alive = 1
		}
		msg.Snakes = append(msg.Snakes, dto)
	}
	return msg
}
