package systems

import (
	"time"

	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/automoto/rollball/tags"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBalls derives force and impulse for every controlled ball.
// Must run AFTER ProcessInputs and BEFORE UpdatePhysics.
func UpdateBalls(ecs *ecs.ECS) {
	now := GetOrCreateClock(ecs).Elapsed

	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		UpdateBall(e, now, cfg.Motion)
	})
}

// UpdateBall resolves motion for a single ball entity and writes its force and
// impulse slots.
func UpdateBall(e *donburi.Entry, now time.Duration, tuning cfg.MotionConfig) {
	input := components.Input.Get(e)
	cooldown := components.JumpCooldown.Get(e)

	force, impulse := ResolveMotion(input, cooldown, now, tuning)
	components.ExternalForce.Get(e).Force = force
	components.ExternalImpulse.Get(e).Impulse = impulse

	if impulse.Len() > 0 {
		log.Debug("jump", "ball", entityName(e), "at", now)
	}
}

// ResolveMotion maps held actions to a planar force and a gated jump impulse.
// Both results are fresh every call; cooldown is updated when a jump fires.
func ResolveMotion(input *components.InputData, cooldown *components.JumpCooldownData, now time.Duration, tuning cfg.MotionConfig) (force, impulse mgl64.Vec3) {
	var dir mgl64.Vec3

	// Backward only counts while forward is not held, same for left/right.
	if input.Forward {
		dir = dir.Add(tuning.Forward)
	} else if input.Backward {
		dir = dir.Sub(tuning.Forward)
	}

	right := tuning.Forward.Cross(tuning.Up)
	if input.Right {
		dir = dir.Add(right)
	} else if input.Left {
		dir = dir.Sub(right)
	}

	if dir.Len() > 0 {
		force = dir.Normalize().Mul(tuning.Speed)
	}

	// Level-triggered: a held jump fires again each time the cooldown elapses.
	if input.Jump && cooldown.Ready(now, tuning.JumpCooldown) {
		impulse = tuning.Up.Normalize().Mul(tuning.JumpImpulse)
		cooldown.Trigger(now)
	}

	return force, impulse
}
