package game

import "gridsnake/board"

// Food is the single collectible on the board. The zero value is absent.
type Food struct {
	pos    board.Cell
	exists bool
}

// Respawn places the food at c
func (f *Food) Respawn(c board.Cell) {
	f.pos = c
	f.exists = true
}

// Remove clears the food
func (f *Food) Remove() {
	f.exists = false
}

// Exists reports whether food is on the board
func (f *Food) Exists() bool {
	return f.exists
}

// Position returns the food cell, false when absent
func (f *Food) Position() (board.Cell, bool) {
	return f.pos, f.exists
}
