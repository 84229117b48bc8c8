package terminal

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/entity"
	"snake-classic/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	statusRows  = 1 // Rows reserved above the field
	columnsWide = 2 // Terminal columns per field cell
	snakeGlyph  = '█'
	foodGlyph   = '●'
)

// Renderer draws the field onto a tcell screen. After the first full
// frame it only repaints what a step changed.
type Renderer struct {
	screen tcell.Screen
	grid   types.Geometry
	styles map[entity.Kind]tcell.Style
	blank  tcell.Style
}

func NewRenderer(screen tcell.Screen, grid types.Geometry) *Renderer {
	return &Renderer{
		screen: screen,
		grid:   grid,
		styles: map[entity.Kind]tcell.Style{
			entity.KindSnake: kindStyle(entity.KindSnake),
			entity.KindFood:  kindStyle(entity.KindFood),
		},
		blank: tcell.StyleDefault.Background(toColor(entity.Black)),
	}
}

func kindStyle(k entity.Kind) tcell.Style {
	return tcell.StyleDefault.
		Foreground(toColor(entity.KindColor(k))).
		Background(toColor(entity.Black))
}

func toColor(c entity.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Size is the terminal area the field needs, status line included.
func (r *Renderer) Size() (width, height int) {
	return r.grid.FieldWidth * columnsWide, r.grid.FieldHeight + statusRows
}

// Fits reports whether the screen is large enough for the field.
func (r *Renderer) Fits() bool {
	w, h := r.screen.Size()
	needW, needH := r.Size()
	return w >= needW && h >= needH
}

// DrawFull clears the screen and paints every entity.
func (r *Renderer) DrawFull(snap game.Snapshot) {
	r.screen.Clear()
	w, h := r.Size()
	for y := statusRows; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.blank)
		}
	}
	r.drawEntities(snap)
	r.drawStatus(snap)
	r.screen.Show()
}

// Apply repaints the cells touched by one step: the vacated tail, any
// segments dropped by a collision, then the snake and the food.
func (r *Renderer) Apply(res game.StepResult, snap game.Snapshot) {
	if res.HasTail {
		r.erase(res.Tail)
	}
	for _, c := range res.Cleared {
		r.erase(c)
	}
	r.drawEntities(snap)
	r.drawStatus(snap)
	r.screen.Show()
}

func (r *Renderer) drawEntities(snap game.Snapshot) {
	for _, p := range snap.Positions {
		r.drawCell(p, snakeGlyph, r.styles[entity.KindSnake])
	}
	r.drawCell(snap.Food, foodGlyph, r.styles[entity.KindFood])
}

func (r *Renderer) erase(c types.Cell) {
	r.drawCell(c, ' ', r.blank)
}

func (r *Renderer) drawCell(c types.Cell, glyph rune, style tcell.Style) {
	x, y := r.screenPos(c)
	for i := 0; i < columnsWide; i++ {
		r.screen.SetContent(x+i, y, glyph, nil, style)
	}
}

// screenPos maps a field cell to its left terminal column and row.
func (r *Renderer) screenPos(c types.Cell) (x, y int) {
	return c.X / r.grid.CellSize * columnsWide, c.Y/r.grid.CellSize + statusRows
}

func (r *Renderer) drawStatus(snap game.Snapshot) {
	w, _ := r.Size()
	line := fmt.Sprintf("Length: %d  Best: %d", snap.Length, snap.BestLength)
	r.drawText(0, 0, w, line)
}

// DrawMessage writes msg on the status line, padded to the field width.
func (r *Renderer) DrawMessage(msg string) {
	w, _ := r.Size()
	r.drawText(0, 0, w, msg)
	r.screen.Show()
}

func (r *Renderer) drawText(x, y, width int, text string) {
	style := tcell.StyleDefault
	col := 0
	for _, ch := range text {
		if col >= width {
			return
		}
		r.screen.SetContent(x+col, y, ch, nil, style)
		col++
	}
	for ; col < width; col++ {
		r.screen.SetContent(x+col, y, ' ', nil, style)
	}
}
