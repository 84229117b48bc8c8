package manager

import (
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// RandSource is the randomness used to pick food cells.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

type FoodManager struct {
	grid types.Geometry
	rng  RandSource
}

// NewFoodManager creates a food manager. A nil rng is replaced by a
// source seeded with seed.
func NewFoodManager(grid types.Geometry, rng RandSource, seed uint64) *FoodManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(seed))
	}
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Place returns a uniformly random free cell. When every cell is occupied
// it falls back to a uniformly random cell of the whole field.
func (fm *FoodManager) Place(occupied []types.Cell) types.Cell {
	taken := make(map[types.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	all := fm.grid.AllCells()
	free := make([]types.Cell, 0, len(all))
	for _, c := range all {
		if _, ok := taken[c]; !ok {
			free = append(free, c)
		}
	}

	if len(free) == 0 {
		return all[fm.rng.Intn(len(all))]
	}
	return free[fm.rng.Intn(len(free))]
}
