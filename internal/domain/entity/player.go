package entity

// Direction is a cardinal facing direction.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MoveState is the player's movement state.
type MoveState int

const (
	MoveIdle MoveState = iota
	MoveWalking
)

// String returns the string representation of the movement state
func (m MoveState) String() string {
	switch m {
	case MoveIdle:
		return "idle"
	case MoveWalking:
		return "walking"
	default:
		return "unknown"
	}
}

// Player is the controlled entity. It is owned and mutated exclusively
// by the simulation tick; rendering reads it and never writes.
type Player struct {
	X, Y float64
	W, H float64

	// Speed is the movement speed in pixels per millisecond of tick
	// time.
	Speed float64

	Facing Direction
	Moving MoveState

	// Character is the name of the active character profile.
	Character string
}

// NewPlayer creates a player at the given position facing down.
func NewPlayer(x, y, w, h, speed float64) *Player {
	return &Player{
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		Speed:  speed,
		Facing: DirDown,
	}
}

// Rect returns the player's rectangle at its current position.
func (p *Player) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// RectAt returns the player's rectangle as if it stood at (x, y).
// Used to test candidate positions before committing a move.
func (p *Player) RectAt(x, y float64) Rect {
	return Rect{X: x, Y: y, W: p.W, H: p.H}
}
