package types

// Geometry describes a toroidal grid of FieldWidth x FieldHeight cells,
// each CellSize pixels wide. The zero value is not usable.
type Geometry struct {
	CellSize    int
	FieldWidth  int
	FieldHeight int
}

func (g Geometry) ScreenWidth() int {
	return g.FieldWidth * g.CellSize
}

func (g Geometry) ScreenHeight() int {
	return g.FieldHeight * g.CellSize
}

// TotalCells is the number of distinct cells on the field.
func (g Geometry) TotalCells() int {
	return g.FieldWidth * g.FieldHeight
}

// Advance moves c one cell in d, wrapping around both axes.
func (g Geometry) Advance(c Cell, d Direction) Cell {
	dx, dy := d.Vector(g.CellSize)
	return Cell{
		X: wrap(c.X+dx, g.ScreenWidth()),
		Y: wrap(c.Y+dy, g.ScreenHeight()),
	}
}

// Contains reports whether c is a valid, cell-aligned position on the field.
func (g Geometry) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.ScreenWidth() &&
		c.Y >= 0 && c.Y < g.ScreenHeight() &&
		c.X%g.CellSize == 0 && c.Y%g.CellSize == 0
}

// AllCells lists every cell of the field, row by row.
func (g Geometry) AllCells() []Cell {
	cells := make([]Cell, 0, g.TotalCells())
	for y := 0; y < g.FieldHeight; y++ {
		for x := 0; x < g.FieldWidth; x++ {
			cells = append(cells, Cell{X: x * g.CellSize, Y: y * g.CellSize})
		}
	}
	return cells
}

// Center is the start cell of a fresh snake.
func (g Geometry) Center() Cell {
	return Cell{
		X: (g.FieldWidth / 2) * g.CellSize,
		Y: (g.FieldHeight / 2) * g.CellSize,
	}
}

// Distance is the Manhattan distance between two cells in cell units,
// taking the shorter way around each axis.
func (g Geometry) Distance(a, b Cell) int {
	dx := abs(a.X-b.X) / g.CellSize
	dy := abs(a.Y-b.Y) / g.CellSize

	if dx > g.FieldWidth/2 {
		dx = g.FieldWidth - dx
	}
	if dy > g.FieldHeight/2 {
		dy = g.FieldHeight - dy
	}

	return dx + dy
}

// wrap is a modulo that never returns a negative value.
func wrap(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
