// Package screen defines the Screen interface for top-level game
// screens.
//
// Each screen (exploring, menus, etc.) implements the Screen interface
// to handle its own update logic and rendering.
package screen

import "github.com/hajimehoshi/ebiten/v2"

// Screen represents a top-level game screen.
//
// The game loop delegates Update and Draw calls to the current screen.
// Screen transitions are handled by returning a new Screen from Update.
type Screen interface {
	// Update updates the screen state.
	// dt is the delta time in milliseconds of simulated time.
	// Returns the next screen if a transition is needed, nil to stay
	// on the current screen.
	// Returns an error to terminate the game.
	Update(dt float64) (next Screen, err error)

	// Draw renders the screen.
	Draw(target *ebiten.Image)

	// OnEnter is called when entering this screen.
	OnEnter()

	// OnExit is called when leaving this screen.
	// Use this for cleanup, saving state, or resource release.
	OnExit()
}
