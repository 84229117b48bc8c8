package ai

import (
	"snake-classic/game"
	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// headings in evaluation order; ties keep the earliest one.
var headings = [4]types.Direction{types.Up, types.Right, types.Down, types.Left}

// Autopilot is an input adapter that steers the snake towards the food
// without biting itself when a safe move exists.
type Autopilot struct {
	grid         types.Geometry
	collisionMgr *manager.CollisionManager
}

func NewAutopilot(grid types.Geometry) *Autopilot {
	return &Autopilot{
		grid:         grid,
		collisionMgr: manager.NewCollisionManager(grid),
	}
}

// Intent picks the next heading for the snapshot, or None when every
// non-reversing move runs into the body.
func (a *Autopilot) Intent(snap game.Snapshot) types.Direction {
	snake := entity.NewSnakeFromBody(snap.Positions, snap.Direction)
	food := entity.Food{Position: snap.Food}
	head := snake.GetHead()

	best := types.None
	bestDist := 0
	for _, d := range a.candidates(snap.Direction) {
		next := a.grid.Advance(head, d)
		if a.collisionMgr.IsBodyCollision(next, snake) {
			continue
		}
		dist := a.collisionMgr.FoodDistance(next, food)
		if best == types.None || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// candidates lists the current heading first, then the two turns.
func (a *Autopilot) candidates(current types.Direction) []types.Direction {
	out := make([]types.Direction, 0, 3)
	if current.Valid() {
		out = append(out, current)
	}
	for _, d := range headings {
		if d != current && d != current.Opposite() {
			out = append(out, d)
		}
	}
	return out
}
