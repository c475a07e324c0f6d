package systems

import (
	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for key transitions to avoid allocations
var transitionKeys []ebiten.Key

// PollKeyboard turns this frame's key transitions into KeyEvents.
// Must run BEFORE ProcessInputs in the system order.
func PollKeyboard(ecs *ecs.ECS) {
	transitionKeys = inpututil.AppendJustReleasedKeys(transitionKeys[:0])
	for _, key := range transitionKeys {
		components.KeyTransition.Publish(ecs.World, components.KeyEvent{Key: key, Pressed: false})
	}

	transitionKeys = inpututil.AppendJustPressedKeys(transitionKeys[:0])
	for _, key := range transitionKeys {
		components.KeyTransition.Publish(ecs.World, components.KeyEvent{Key: key, Pressed: true})
	}
}

// RegisterInputTracker subscribes the input tracker to key transitions of w.
// Call once per world.
func RegisterInputTracker(w donburi.World) {
	components.KeyTransition.Subscribe(w, trackKeyTransition)
}

// ProcessInputs drains the queued key transitions in arrival order.
// Must run BEFORE UpdateBalls in the system order.
func ProcessInputs(ecs *ecs.ECS) {
	components.KeyTransition.ProcessEvents(ecs.World)
}

func trackKeyTransition(w donburi.World, event components.KeyEvent) {
	components.Input.Each(w, func(entry *donburi.Entry) {
		ApplyKeyEvent(components.Input.Get(entry), event)
	})
}

// ApplyKeyEvent sets the flag bound to event.Key. Unbound keys are ignored
// and reported as false.
func ApplyKeyEvent(input *components.InputData, event components.KeyEvent) bool {
	return input.Set(cfg.Input.ActionForKey(event.Key), event.Pressed)
}
