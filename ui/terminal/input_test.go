package terminal

import (
	"testing"

	"snake-classic/game/types"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     tcell.Key
		ch      rune
		wantCmd Command
		wantDir types.Direction
	}{
		{"arrow up", tcell.KeyUp, 0, CmdTurn, types.Up},
		{"arrow down", tcell.KeyDown, 0, CmdTurn, types.Down},
		{"arrow left", tcell.KeyLeft, 0, CmdTurn, types.Left},
		{"arrow right", tcell.KeyRight, 0, CmdTurn, types.Right},
		{"wasd", tcell.KeyRune, 'a', CmdTurn, types.Left},
		{"escape", tcell.KeyEscape, 0, CmdQuit, types.None},
		{"ctrl-c", tcell.KeyCtrlC, 0, CmdQuit, types.None},
		{"restart", tcell.KeyRune, 'r', CmdRestart, types.None},
		{"unbound rune", tcell.KeyRune, 'x', CmdNone, types.None},
		{"unbound key", tcell.KeyEnter, 0, CmdNone, types.None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, dir := TranslateKey(tt.key, tt.ch)
			if cmd != tt.wantCmd || dir != tt.wantDir {
				t.Errorf("TranslateKey() = %v, %v; want %v, %v", cmd, dir, tt.wantCmd, tt.wantDir)
			}
		})
	}
}
