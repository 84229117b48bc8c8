package types

import (
	"fmt"
	"strings"
	"time"
)

// Cell is one grid position in pixel-scaled coordinates.
// Both coordinates are multiples of the configured cell size.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction represents a cardinal heading. None means "no direction",
// it is used by input adapters to signal that no change was requested.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

var directionNames = map[Direction]string{
	None:  "none",
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Valid reports whether d is one of the four cardinal headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the reverse heading. None and invalid values map to None.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// Vector returns the displacement of one step in d for the given cell size.
func (d Direction) Vector(cellSize int) (dx, dy int) {
	switch d {
	case Up:
		return 0, -cellSize
	case Right:
		return cellSize, 0
	case Down:
		return 0, cellSize
	case Left:
		return -cellSize, 0
	default:
		return 0, 0
	}
}

// ParseDirection converts an adapter-level name into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "right", "r":
		return Right, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	}
	return None, fmt.Errorf("unknown direction %q", s)
}

// ResolveIntent returns the requested heading unless it would reverse the
// current one. The boolean is false when the request must be dropped.
func ResolveIntent(current, requested Direction) (Direction, bool) {
	if !requested.Valid() || requested == current.Opposite() {
		return current, false
	}
	return requested, true
}

// Config holds the static game configuration, read once at startup.
type Config struct {
	CellSize    int // Cell edge in pixels
	FieldWidth  int // Field width in cells
	FieldHeight int // Field height in cells
	TickRate    int // Simulation ticks per second
}

// DefaultConfig returns a 32x24 field of 20px cells running at 20 ticks per second.
func DefaultConfig() Config {
	return Config{
		CellSize:    20,
		FieldWidth:  32,
		FieldHeight: 24,
		TickRate:    20,
	}
}

func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.FieldWidth <= 0 {
		return fmt.Errorf("field width must be positive, got %d", c.FieldWidth)
	}
	if c.FieldHeight <= 0 {
		return fmt.Errorf("field height must be positive, got %d", c.FieldHeight)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	return nil
}

func (c Config) Geometry() Geometry {
	return Geometry{
		CellSize:    c.CellSize,
		FieldWidth:  c.FieldWidth,
		FieldHeight: c.FieldHeight,
	}
}

// TickInterval is the wall-clock time between two simulation steps.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
