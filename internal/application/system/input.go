package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Snapshot holds the state of the logical actions for one tick. The
// simulation keeps the previous tick's snapshot itself and derives
// pressed-this-tick edges from the pair.
type Snapshot struct {
	Up       bool
	Down     bool
	Left     bool
	Right    bool
	Interact bool
	Switch   bool
}

// InputSystem reads the keyboard into a Snapshot. Capture lives here so
// the simulation tick stays a pure function of its inputs.
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Read returns the current snapshot. Arrow keys and WASD both move,
// E or Space interacts, Tab switches characters.
func (s *InputSystem) Read() Snapshot {
	return Snapshot{
		Up:       ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:     ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:     ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:    ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Interact: ebiten.IsKeyPressed(ebiten.KeyE) || ebiten.IsKeyPressed(ebiten.KeySpace),
		Switch:   ebiten.IsKeyPressed(ebiten.KeyTab),
	}
}
