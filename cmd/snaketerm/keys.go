package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"gridsnake/game"
)

type keyAction int

const (
	actionNone keyAction = iota
	actionSteer
	actionPause
	actionFaster
	actionRestart
	actionQuit
)

// action classifies a key event
func action(ev *tcell.EventKey) keyAction {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		return actionSteer
	case tcell.KeyRune:
	default:
		return actionNone
	}

	switch unicode.ToLower(ev.Rune()) {
	case 'q':
		return actionQuit
	case 'p':
		return actionPause
	case '+', '=':
		return actionFaster
	case 'r':
		return actionRestart
	case 'w', 'a', 's', 'd':
		return actionSteer
	}
	return actionNone
}

// gameKey translates a terminal key into the engine's key identifiers
func gameKey(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyArrowUp
	case tcell.KeyDown:
		return game.KeyArrowDown
	case tcell.KeyLeft:
		return game.KeyArrowLeft
	case tcell.KeyRight:
		return game.KeyArrowRight
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return game.KeyW
		case 'a':
			return game.KeyA
		case 's':
			return game.KeyS
		case 'd':
			return game.KeyD
		}
	}
	return game.KeyNone
}
