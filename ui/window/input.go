package window

import (
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyDirections = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyW, types.Up},
	{rl.KeyS, types.Down},
	{rl.KeyA, types.Left},
	{rl.KeyD, types.Right},
}

// PollIntent returns the heading of the last arrow or WASD key pressed
// since the previous frame, or None.
func PollIntent() types.Direction {
	intent := types.None
	for _, kd := range keyDirections {
		if rl.IsKeyPressed(kd.key) {
			intent = kd.dir
		}
	}
	return intent
}

// RestartRequested reports whether the restart key was pressed.
func RestartRequested() bool {
	return rl.IsKeyPressed(rl.KeyR)
}
