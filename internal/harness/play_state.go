// internal/harness/play_state.go
package harness

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-skewrect/internal/state"
)

var _ state.State = (*PlayState)(nil)

// PlayState runs the animation and handles the sketch keys:
// Space pauses, R rolls a new seed, S saves a snapshot, L toggles the label.
type PlayState struct {
	app *App
}

func NewPlayState(app *App) *PlayState {
	return &PlayState{app: app}
}

func (s *PlayState) Name() string { return "play" }

func (s *PlayState) Enter() {}

func (s *PlayState) Update() error {
	if handleCommonKeys(s.app) {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && s.app.scene.Profile.Animate {
		s.app.stateMachine.SetState(NewPauseState(s.app, s))
		return nil
	}
	s.app.step()
	return nil
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.app.drawFrame(screen)
}

func (s *PlayState) Exit() {}

// handleCommonKeys processes keys valid in every state. It reports whether
// the scene was rebuilt, in which case the tick should not advance it.
func handleCommonKeys(app *App) bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		app.showLabel = !app.showLabel
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		app.snapshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		app.reseed()
		return true
	}
	return false
}
