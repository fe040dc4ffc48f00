// Package scene defines the Scene interface for game screens.
//
// Each game screen (title, playing) implements the Scene interface to
// handle its own update logic and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Tick is the timing information handed to a scene on every update.
type Tick struct {
	// DT is the delta time in seconds (typically 1/60).
	DT float64
	// Frame is the global frame number, counted from the first update.
	Frame int
}

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(tick Tick) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup, saving state, or resource release.
	OnExit()
}
