package game

import (
	"fmt"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
)

// Outcome classifies what happened during one tick.
type Outcome int

const (
	Advanced Outcome = iota
	Grew
	Collided
)

func (o Outcome) String() string {
	switch o {
	case Advanced:
		return "advanced"
	case Grew:
		return "grew"
	case Collided:
		return "collided"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	Outcome Outcome
	// Tail is the cell vacated by the tail this tick. HasTail is false when
	// the snake grew and nothing needs erasing.
	Tail    types.Cell
	HasTail bool
	// Cleared holds the segments dropped by a collision reset.
	Cleared []types.Cell
	// NewBest is set when the snake reached a length never seen this session.
	NewBest bool
}

// Snapshot is a read-only copy of the state a renderer needs.
type Snapshot struct {
	UUID       string
	Positions  []types.Cell
	Food       types.Cell
	Length     int
	Direction  types.Direction
	BestLength int
	Tick       int
}

// Head returns the head cell of the snapshot.
func (s Snapshot) Head() types.Cell {
	return s.Positions[0]
}

// Game owns the snake and the food. It is not safe for concurrent use;
// drivers call Step from a single loop.
type Game struct {
	UUID   string
	Config types.Config
	Grid   types.Geometry

	snake        *entity.Snake
	food         entity.Food
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
	tick         int
}

// New creates a game with a fresh snake in the centre of the field and food
// on a free cell. A nil rng selects a source seeded with seed.
func New(cfg types.Config, rng manager.RandSource, seed uint64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	grid := cfg.Geometry()
	g := &Game{
		Config:       cfg,
		Grid:         grid,
		foodMgr:      manager.NewFoodManager(grid, rng, seed),
		collisionMgr: manager.NewCollisionManager(grid),
		stateMgr:     manager.NewStateManager(),
	}
	g.reset()

	return g, nil
}

// Restart puts the snake and food back to their start-of-game values.
// Session statistics are kept. Call it between ticks only.
func (g *Game) Restart() {
	g.reset()
	g.stateMgr.RecordRestart()
}

func (g *Game) reset() {
	g.UUID = uuid.New().String()
	g.snake = entity.NewSnake(g.Grid.Center(), types.Right)
	g.food = entity.Food{Position: g.foodMgr.Place(g.snake.Positions())}
	g.tick = 0
}

// Step runs one tick. intent may be None when no input arrived; values
// outside the four headings are ignored.
func (g *Game) Step(intent types.Direction) StepResult {
	g.tick++
	g.stateMgr.RecordTick()

	if intent.Valid() {
		g.snake.SetPendingDirection(intent)
	}
	g.snake.ResolveDirection()

	grow := g.collisionMgr.WillEat(g.snake, g.food)
	tail, removed := g.snake.Advance(g.Grid, grow)

	result := StepResult{
		Outcome: Advanced,
		Tail:    tail,
		HasTail: removed,
	}

	if grow {
		g.food = entity.Food{Position: g.foodMgr.Place(g.snake.Positions())}
		result.Outcome = Grew
		result.NewBest = g.stateMgr.RecordGrowth(g.snake.Length())
	}

	// Collision wins over growth recorded in the same tick.
	if g.snake.DetectSelfCollision() {
		result.Cleared = g.snake.ResetToSingleSegment()
		result.Outcome = Collided
		result.NewBest = false
		g.stateMgr.RecordCollision()
	}

	return result
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() entity.Food {
	return g.food
}

func (g *Game) GetStats() manager.SessionStats {
	return g.stateMgr.GetStats()
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		UUID:       g.UUID,
		Positions:  g.snake.Positions(),
		Food:       g.food.Position,
		Length:     g.snake.Length(),
		Direction:  g.snake.Direction(),
		BestLength: g.stateMgr.GetBestLength(),
		Tick:       g.tick,
	}
}
