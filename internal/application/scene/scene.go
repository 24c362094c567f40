// Package scene defines the screens the demo game loop switches between.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the demo. The game loop forwards its Update and
// Draw calls to the current scene and switches scenes when Update returns
// a non-nil next scene.
type Scene interface {
	// Update advances the scene by dt seconds, one visual frame.
	// A non-nil error stops the game; ebiten.Termination stops it cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene.
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced or the game closes.
	// Scenes that record input save it here.
	OnExit()
}
