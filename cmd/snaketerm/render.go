package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gridsnake/board"
	"gridsnake/game"
)

// Snake colors, indexed by snake id
var snakeColors = []tcell.Color{
	tcell.ColorGreen, tcell.ColorBlue, tcell.ColorYellow, tcell.ColorFuchsia,
	tcell.ColorAqua, tcell.ColorOrange, tcell.ColorPurple, tcell.ColorLime,
	tcell.ColorTeal, tcell.ColorSilver, tcell.ColorNavy, tcell.ColorMaroon,
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
)

func snakeStyle(st game.SnakeState) tcell.Style {
	if !st.Alive {
		return deadStyle
	}
	return tcell.StyleDefault.Foreground(snakeColors[st.ID%len(snakeColors)])
}

// putCell paints one board cell. Cells are two columns wide so the board
// looks square in most terminal fonts.
func (t *Term) putCell(c board.Cell, r rune, style tcell.Style) {
	x, y := 1+2*c.X, 1+c.Y
	t.screen.SetContent(x, y, r, nil, style)
	t.screen.SetContent(x+1, y, r, nil, style)
}

func (t *Term) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *Term) drawBorder(w, h int) {
	right, bottom := 2*w+1, h+1
	for x := 1; x < right; x++ {
		t.screen.SetContent(x, 0, '─', nil, borderStyle)
		t.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := 1; y < bottom; y++ {
		t.screen.SetContent(0, y, '│', nil, borderStyle)
		t.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	t.screen.SetContent(0, 0, '┌', nil, borderStyle)
	t.screen.SetContent(right, 0, '┐', nil, borderStyle)
	t.screen.SetContent(0, bottom, '└', nil, borderStyle)
	t.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (t *Term) draw() {
	t.screen.Clear()
	snap := t.engine.Snapshot()
	t.drawBorder(snap.Width, snap.Height)

	if snap.HasFood {
		t.putCell(snap.Food, '●', foodStyle)
	}

	// Bodies first so heads stay visible where snakes overlap
	for _, st := range snap.Snakes {
		style := snakeStyle(st)
		for i := len(st.Body) - 1; i > 0; i-- {
			if st.Body[i].InBounds(snap.Width, snap.Height) {
				t.putCell(st.Body[i], '▒', style)
			}
		}
	}
	for _, st := range snap.Snakes {
		if len(st.Body) > 0 && st.Body[0].InBounds(snap.Width, snap.Height) {
			t.putCell(st.Body[0], '█', snakeStyle(st))
		}
	}

	t.drawHUD(snap)
	t.screen.Show()
}

func (t *Term) drawHUD(snap game.Snapshot) {
	y := snap.Height + 2
	speed := 1
	if t.fast {
		speed = fastFactor
	}
	status := fmt.Sprintf(" step %d  %s  x%d  session %d ", snap.Step, snap.Mode, speed, t.session)
	t.drawText(0, y, status, hudStyle)
	if t.paused {
		t.drawText(len(status)+1, y, " PAUSED ", alertStyle)
	}

	for i, st := range snap.Snakes {
		line := fmt.Sprintf(" %2d %-15s score %3d  len %3d", st.ID, st.Kind, st.Score, len(st.Body))
		if !st.Alive {
			line += "  dead"
		}
		t.drawText(0, y+1+i, line, snakeStyle(st))
	}

	if t.over {
		msg := " GAME OVER  r restart  q quit "
		if id, ok := snap.Winner(); ok {
			msg = fmt.Sprintf(" GAME OVER  snake %d leads  r restart  q quit ", id)
		}
		x := snap.Width + 1 - len(msg)/2
		if x < 0 {
			x = 0
		}
		t.drawText(x, snap.Height/2+1, msg, alertStyle)
	}

	t.drawText(0, y+2+len(snap.Snakes), " arrows/WASD steer  p pause  + speed  q quit", borderStyle)
}
