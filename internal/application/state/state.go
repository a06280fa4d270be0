package state

// GameState represents the current state of the game
type GameState int

const (
	StateExploring GameState = iota
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateExploring:
		return "Exploring"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
