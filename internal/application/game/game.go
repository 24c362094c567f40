// Package game adapts a Scene stack to ebiten.Game.
package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/locomotion/internal/application/scene"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	closed  bool
	log     logrus.FieldLogger
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display config.DisplayConfig, log logrus.FieldLogger) *Game {
	fps := display.Framerate
	if fps <= 0 {
		fps = 60
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	g := &Game{
		current: initialScene,
		screenW: display.ScreenWidth,
		screenH: display.ScreenHeight,
		dt:      1.0 / float64(fps),
		log:     log,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// ebiten.Termination from a scene closes the game cleanly.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, ebiten.Termination) {
			g.Close()
		}
		return err
	}

	if next != nil {
		g.log.WithFields(logrus.Fields{
			"from": fmt.Sprintf("%T", g.current),
			"to":   fmt.Sprintf("%T", next),
		}).Debug("scene transition")
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the current scene once. Call it after ebiten.RunGame returns.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}

// DT returns the delta time passed to scenes
func (g *Game) DT() float64 {
	return g.dt
}
