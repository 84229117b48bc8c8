package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

type CollisionManager struct {
	grid types.Geometry
}

func NewCollisionManager(grid types.Geometry) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Cell, food entity.Food) bool {
	return pos == food.Position
}

// WillEat looks one step ahead along the snake's current heading.
func (cm *CollisionManager) WillEat(snake *entity.Snake, food entity.Food) bool {
	return cm.IsFoodCollision(snake.NextHead(cm.grid), food)
}

// IsBodyCollision reports whether pos lands on the body, ignoring the tail
// segment, which moves away on a non-growing step.
func (cm *CollisionManager) IsBodyCollision(pos types.Cell, snake *entity.Snake) bool {
	body := snake.Positions()
	for _, p := range body[:len(body)-1] {
		if p == pos {
			return true
		}
	}
	return false
}

// FoodDistance is the wrap-aware Manhattan distance from pos to the food.
func (cm *CollisionManager) FoodDistance(pos types.Cell, food entity.Food) int {
	return cm.grid.Distance(pos, food.Position)
}
