package window

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/entity"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const statusBarHeight = 24 // Pixels below the field for the score line

// Renderer draws the game into a raylib window sized to the field.
type Renderer struct {
	grid      types.Geometry
	cellSize  int32
	fontSize  int32
	title     string
	bestShown int
}

func NewRenderer(grid types.Geometry, title string) *Renderer {
	return &Renderer{
		grid:     grid,
		cellSize: int32(grid.CellSize),
		fontSize: statusBarHeight - 6,
		title:    title,
	}
}

// Open creates the window. Close must be called when done.
func (r *Renderer) Open(fps int) {
	rl.InitWindow(int32(r.grid.ScreenWidth()), int32(r.grid.ScreenHeight())+statusBarHeight, r.title)
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(int32(fps))
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

func (r *Renderer) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func toColor(c entity.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// Draw paints a full frame. raylib redraws every frame, so the erase hints
// in StepResult are not needed here.
func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(entity.Black))

	snakeColor := toColor(entity.KindColor(entity.KindSnake))
	for _, p := range snap.Positions {
		rl.DrawRectangle(int32(p.X), int32(p.Y), r.cellSize, r.cellSize, snakeColor)
	}
	r.drawHeading(snap.Head(), snap.Direction)

	food := snap.Food
	rl.DrawRectangle(int32(food.X), int32(food.Y), r.cellSize, r.cellSize, toColor(entity.KindColor(entity.KindFood)))

	r.drawStatusBar(snap)
	rl.EndDrawing()

	if snap.BestLength > r.bestShown {
		r.bestShown = snap.BestLength
		rl.SetWindowTitle(fmt.Sprintf("%s - Best: %d", r.title, r.bestShown))
	}
}

// drawHeading marks the head with a triangle pointing along the heading.
func (r *Renderer) drawHeading(head types.Cell, dir types.Direction) {
	headX := float32(head.X)
	headY := float32(head.Y)
	size := float32(r.cellSize)
	half := size / 2

	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a = rl.Vector2{X: headX + size, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY}
		c = rl.Vector2{X: headX + half, Y: headY + size}
	case types.Left:
		a = rl.Vector2{X: headX, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY + size}
		c = rl.Vector2{X: headX + half, Y: headY}
	case types.Down:
		a = rl.Vector2{X: headX + half, Y: headY + size}
		b = rl.Vector2{X: headX + size, Y: headY + half}
		c = rl.Vector2{X: headX, Y: headY + half}
	case types.Up:
		a = rl.Vector2{X: headX + half, Y: headY}
		b = rl.Vector2{X: headX, Y: headY + half}
		c = rl.Vector2{X: headX + size, Y: headY + half}
	default:
		return
	}
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawStatusBar(snap game.Snapshot) {
	y := int32(r.grid.ScreenHeight())
	rl.DrawRectangle(0, y, int32(r.grid.ScreenWidth()), statusBarHeight, rl.DarkGray)
	label := fmt.Sprintf("Length: %d   Best: %d", snap.Length, snap.BestLength)
	rl.DrawText(label, 6, y+3, r.fontSize, rl.White)
}
