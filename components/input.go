package components

import (
	cfg "github.com/automoto/rollball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputData holds which bound actions are currently held.
// Written only by the input tracker, read by the motion resolver.
type InputData struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool
}

// Set updates the flag for an action. Unbound actions are ignored.
func (d *InputData) Set(id cfg.ActionID, pressed bool) bool {
	switch id {
	case cfg.ActionForward:
		d.Forward = pressed
	case cfg.ActionBackward:
		d.Backward = pressed
	case cfg.ActionLeft:
		d.Left = pressed
	case cfg.ActionRight:
		d.Right = pressed
	case cfg.ActionJump:
		d.Jump = pressed
	default:
		return false
	}
	return true
}

var Input = donburi.NewComponentType[InputData]()

// KeyEvent is a single key transition delivered by the host.
type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool
}

// KeyTransition queues key transitions until the input tracker drains them.
var KeyTransition = events.NewEventType[KeyEvent]()
