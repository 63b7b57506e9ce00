package main

import (
	"fmt"

	"gridsnake/game"
)

// botNames is the pool of display names for AI snakes
var botNames = []string{
	"Rắn Thần", "Sấm Sét", "Bão Tố", "Tia Chớp", "Ma Tốc Độ",
	"Rồng Lửa", "Bóng Đêm", "Sát Thủ", "Độc Xà", "Vua Rắn",
	"Hắc Mamba", "Kim Xà",
}

// Roster holds per-snake display data for one session. Snake ids are dense
// from 0, so plain slices index them.
type Roster struct {
	names  []string
	colors []string
	kinds  []game.Kind
}

// NewRoster names every snake of cfg. Human snakes take the pilot's name once
// someone joins; AI snakes get a bot name tagged with their controller.
func NewRoster(cfg game.Config) *Roster {
	r := &Roster{
		names:  make([]string, cfg.NumSnakes),
		colors: make([]string, cfg.NumSnakes),
		kinds:  make([]game.Kind, cfg.NumSnakes),
	}
	bot := 0
	for i := 0; i < cfg.NumSnakes; i++ {
		kind := cfg.ControllerFor(i)
		r.kinds[i] = kind
		r.colors[i] = PlayerColors[i%len(PlayerColors)]
		if kind.IsHuman() {
			r.names[i] = fmt.Sprintf("Player %d", i+1)
			continue
		}
		r.names[i] = fmt.Sprintf("%s (%s)", botNames[bot%len(botNames)], kind)
		bot++
	}
	return r
}

// SetPilotName renames every human-controlled snake
func (r *Roster) SetPilotName(name string) {
	for i, k := range r.kinds {
		if k.IsHuman() {
			r.names[i] = name
		}
	}
}

// HasHuman reports whether any snake follows keys
func (r *Roster) HasHuman() bool {
	for _, k := range r.kinds {
		if k.IsHuman() {
			return true
		}
	}
	return false
}

// Name returns the display name of a snake
func (r *Roster) Name(id int) string {
	if id < 0 || id >= len(r.names) {
		return "?"
	}
	return r.names[id]
}

// Color returns the display color of a snake
func (r *Roster) Color(id int) string {
	if id < 0 || id >= len(r.colors) {
		return "#ffffff"
	}
	return r.colors[id]
}
