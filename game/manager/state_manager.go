package manager

// SessionStats summarises the games played since the process started.
// Nothing is persisted.
type SessionStats struct {
	BestLength int
	FoodEaten  int
	Collisions int
	Ticks      int
	Games      int
}

type StateManager struct {
	stats SessionStats
}

func NewStateManager() *StateManager {
	return &StateManager{
		stats: SessionStats{BestLength: 1, Games: 1},
	}
}

func (sm *StateManager) RecordTick() {
	sm.stats.Ticks++
}

// RecordGrowth registers an eaten apple and reports whether length is a new best.
func (sm *StateManager) RecordGrowth(length int) bool {
	sm.stats.FoodEaten++
	return sm.UpdateBest(length)
}

func (sm *StateManager) RecordCollision() {
	sm.stats.Collisions++
}

func (sm *StateManager) RecordRestart() {
	sm.stats.Games++
}

// UpdateBest stores length if it beats the best so far.
func (sm *StateManager) UpdateBest(length int) bool {
	if length > sm.stats.BestLength {
		sm.stats.BestLength = length
		return true
	}
	return false
}

func (sm *StateManager) GetBestLength() int {
	return sm.stats.BestLength
}

func (sm *StateManager) GetStats() SessionStats {
	return sm.stats
}
