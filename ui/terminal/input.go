package terminal

import (
	"snake-classic/game/types"

	"github.com/gdamore/tcell/v2"
)

// Command is what a key press asks the driver to do.
type Command int

const (
	CmdNone Command = iota
	CmdTurn
	CmdRestart
	CmdQuit
)

// TranslateKey maps a key to a driver command. For CmdTurn the returned
// direction is the requested heading.
func TranslateKey(key tcell.Key, ch rune) (Command, types.Direction) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit, types.None
	case tcell.KeyUp:
		return CmdTurn, types.Up
	case tcell.KeyDown:
		return CmdTurn, types.Down
	case tcell.KeyLeft:
		return CmdTurn, types.Left
	case tcell.KeyRight:
		return CmdTurn, types.Right
	case tcell.KeyRune:
		switch ch {
		case 'w', 'W':
			return CmdTurn, types.Up
		case 's', 'S':
			return CmdTurn, types.Down
		case 'a', 'A':
			return CmdTurn, types.Left
		case 'd', 'D':
			return CmdTurn, types.Right
		case 'r', 'R':
			return CmdRestart, types.None
		case 'q', 'Q':
			return CmdQuit, types.None
		}
	}
	return CmdNone, types.None
}

// PollEvents forwards screen events to events until quit is closed.
func PollEvents(screen tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}
