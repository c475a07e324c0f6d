package components

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type BallData struct {
	Radius float64
	Spawn  mgl64.Vec3
}

var Ball = donburi.NewComponentType[BallData]()

// JumpCooldownData remembers when the last jump impulse was issued.
// Set is false until the first jump.
type JumpCooldownData struct {
	Set bool
	At  time.Duration
}

// Ready reports whether a jump may fire at now.
func (c *JumpCooldownData) Ready(now, cooldown time.Duration) bool {
	return !c.Set || now-c.At >= cooldown
}

// Trigger records a jump at now.
func (c *JumpCooldownData) Trigger(now time.Duration) {
	c.Set = true
	c.At = now
}

var JumpCooldown = donburi.NewComponentType[JumpCooldownData]()

// ExternalForceData is applied continuously by the physics step.
// It is overwritten every frame, never accumulated.
type ExternalForceData struct {
	Force mgl64.Vec3
}

var ExternalForce = donburi.NewComponentType[ExternalForceData]()

// ExternalImpulseData is added once by the next physics step.
type ExternalImpulseData struct {
	Impulse mgl64.Vec3
}

var ExternalImpulse = donburi.NewComponentType[ExternalImpulseData]()
