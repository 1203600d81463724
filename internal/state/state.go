// internal/state/state.go
package state

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// State is one mode of the sketch window: playing, paused.
type State interface {
	Name() string
	Enter()
	Update() error
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine runs exactly one State at a time.
type StateMachine struct {
	current State
	logger  *log.Logger
}

// NewStateMachine creates a machine without a starting state.
func NewStateMachine(logger *log.Logger) *StateMachine {
	if logger == nil {
		logger = log.Default()
	}
	return &StateMachine{logger: logger}
}

// SetState leaves the current state, if any, and enters newState.
func (sm *StateMachine) SetState(newState State) {
	from := "none"
	if sm.current != nil {
		from = sm.current.Name()
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.logger.Debug("state change", "from", from, "to", sm.current.Name())
		sm.current.Enter()
	}
}

// Current returns the active state, or nil.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update forwards the tick to the active state.
func (sm *StateMachine) Update() error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update()
}

// Draw forwards the frame to the active state.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
