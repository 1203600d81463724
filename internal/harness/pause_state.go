// internal/harness/pause_state.go
package harness

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-skewrect/internal/event"
	"go-skewrect/internal/state"
)

// Make sure PauseState satisfies the State interface.
var _ state.State = (*PauseState)(nil)

// PauseState freezes the animation on the last frame.
type PauseState struct {
	app           *App
	previousState state.State
}

func NewPauseState(app *App, prevState state.State) *PauseState {
	return &PauseState{
		app:           app,
		previousState: prevState,
	}
}

func (s *PauseState) Name() string { return "pause" }

func (s *PauseState) Enter() {
	s.app.emit(event.Paused, s.app.scene.Frame())
}

func (s *PauseState) Update() error {
	handleCommonKeys(s.app)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.app.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.app.drawFrame(screen)

	w := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, 0, w, 24, color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED  space: resume  s: snapshot  r: new seed  l: label", 8, 4)
}

func (s *PauseState) Exit() {
	s.app.emit(event.Resumed, s.app.scene.Frame())
}
