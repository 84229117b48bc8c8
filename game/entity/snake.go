package entity

import (
	"snake-classic/game/types"
)

// MinCollisionLength is the shortest body that can bite itself. A snake
// moving one cell per tick without reversing needs at least four segments
// to bring its head back onto its own body.
const MinCollisionLength = 4

// Snake is the player-controlled actor. Positions are stored head first.
type Snake struct {
	positions []types.Cell
	length    int
	direction types.Direction
	pending   types.Direction
}

// NewSnake creates a single-segment snake at startPos heading in dir.
func NewSnake(startPos types.Cell, dir types.Direction) *Snake {
	return &Snake{
		positions: []types.Cell{startPos},
		length:    1,
		direction: dir,
		pending:   types.None,
	}
}

// NewSnakeFromBody creates a snake with the given segments, head first.
// The slice is copied. It panics on an empty body.
func NewSnakeFromBody(body []types.Cell, dir types.Direction) *Snake {
	if len(body) == 0 {
		panic("entity: snake body must have at least one segment")
	}
	positions := make([]types.Cell, len(body))
	copy(positions, body)
	return &Snake{
		positions: positions,
		length:    len(positions),
		direction: dir,
		pending:   types.None,
	}
}

func (s *Snake) GetHead() types.Cell {
	return s.positions[0]
}

// GetTail returns the last segment, which is the head for a single-segment snake.
func (s *Snake) GetTail() types.Cell {
	return s.positions[len(s.positions)-1]
}

// Positions returns a copy of the body, head first.
func (s *Snake) Positions() []types.Cell {
	body := make([]types.Cell, len(s.positions))
	copy(body, s.positions)
	return body
}

func (s *Snake) Kind() Kind {
	return KindSnake
}

func (s *Snake) Length() int {
	return s.length
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// Pending returns the buffered heading change, or None.
func (s *Snake) Pending() types.Direction {
	return s.pending
}

// SetPendingDirection buffers d for the next ResolveDirection call. Later
// calls overwrite earlier ones. Reversals are not checked here.
func (s *Snake) SetPendingDirection(d types.Direction) {
	s.pending = d
}

// ResolveDirection commits the pending heading unless it reverses the
// current one, and always clears the pending slot. It reports whether the
// heading changed.
func (s *Snake) ResolveDirection() bool {
	if s.pending == types.None {
		return false
	}
	next, ok := types.ResolveIntent(s.direction, s.pending)
	s.pending = types.None
	if !ok {
		return false
	}
	changed := next != s.direction
	s.direction = next
	return changed
}

// NextHead is the cell the head would move to on the next Advance.
func (s *Snake) NextHead(g types.Geometry) types.Cell {
	return g.Advance(s.GetHead(), s.direction)
}

// Advance moves the snake one cell along its heading. Without growth the
// tail segment is dropped and returned with removed set to true.
func (s *Snake) Advance(g types.Geometry, grow bool) (tail types.Cell, removed bool) {
	s.Move(s.NextHead(g))

	if grow {
		s.length = len(s.positions)
		return types.Cell{}, false
	}
	return s.RemoveTail(), true
}

// Move prepends newHead to the body without touching the tail.
func (s *Snake) Move(newHead types.Cell) {
	s.positions = append(s.positions, types.Cell{})
	copy(s.positions[1:], s.positions)
	s.positions[0] = newHead
}

// RemoveTail drops and returns the last segment. The head is never removed.
func (s *Snake) RemoveTail() types.Cell {
	tail := s.GetTail()
	if len(s.positions) > 1 {
		s.positions = s.positions[:len(s.positions)-1]
	}
	return tail
}

// DetectSelfCollision reports whether the head overlaps any other segment.
func (s *Snake) DetectSelfCollision() bool {
	if s.length < MinCollisionLength {
		return false
	}

	head := s.GetHead()
	for _, p := range s.positions[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// ResetToSingleSegment truncates the body to its head. Heading and pending
// direction are kept. The dropped segments are returned, head excluded.
func (s *Snake) ResetToSingleSegment() []types.Cell {
	dropped := make([]types.Cell, len(s.positions)-1)
	copy(dropped, s.positions[1:])

	s.positions = s.positions[:1]
	s.length = 1
	return dropped
}

// Occupies reports whether any segment sits on c.
func (s *Snake) Occupies(c types.Cell) bool {
	for _, p := range s.positions {
		if p == c {
			return true
		}
	}
	return false
}
