package systems

import (
	"math"

	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/automoto/rollball/tags"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// supportEpsilon tolerates the ball sinking slightly into a platform between steps.
const supportEpsilon = 1e-3

// UpdatePhysics consumes the force and impulse slots and advances every body
// by one clock step. Planar motion is stepped by the Chipmunk space; height
// is integrated here against the platform tops.
func UpdatePhysics(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	dt := GetOrCreateClock(ecs).DeltaSeconds()
	if dt <= 0 {
		return
	}

	var platforms []*donburi.Entry
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		syncPlatformBody(e)
		platforms = append(platforms, e)
	})

	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		applyExternal(e)
	})

	space.Step(dt)

	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		integrateHeight(e, platforms, dt)
	})
}

// syncPlatformBody pushes the platform pose into its kinematic body.
func syncPlatformBody(e *donburi.Entry) {
	platform := components.Platform.Get(e)
	if platform.Body == nil {
		return
	}
	t := components.Transform.Get(e)
	platform.Body.SetPosition(cp.Vector{X: t.Position.X(), Y: t.Position.Z()})
	platform.Body.SetAngle(planarAngle(t.Rotation))
}

// applyExternal writes the force slot into the body (replacing last frame's)
// and adds the impulse once.
func applyExternal(e *donburi.Entry) {
	body := components.Body.Get(e)
	if body.Body == nil {
		return
	}
	force := components.ExternalForce.Get(e).Force
	impulse := components.ExternalImpulse.Get(e).Impulse

	body.Body.SetForce(cp.Vector{X: force.X(), Y: force.Z()})
	if impulse.X() != 0 || impulse.Z() != 0 {
		body.Body.ApplyImpulseAtLocalPoint(cp.Vector{X: impulse.X(), Y: impulse.Z()}, cp.Vector{})
	}
	if impulse.Y() != 0 {
		body.VelocityY += impulse.Y() / body.Mass
		body.Grounded = false
	}
}

func integrateHeight(e *donburi.Entry, platforms []*donburi.Entry, dt float64) {
	body := components.Body.Get(e)
	ball := components.Ball.Get(e)
	t := components.Transform.Get(e)
	if body.Body == nil {
		return
	}

	pos := body.Body.Position()
	prevBottom := t.Position.Y() - ball.Radius

	body.VelocityY -= cfg.Physics.Gravity * dt
	y := t.Position.Y() + body.VelocityY*dt
	body.Grounded = false

	if body.VelocityY <= 0 {
		if top, ok := SupportHeight(platforms, pos.X, pos.Y, prevBottom); ok && y-ball.Radius <= top {
			y = top + ball.Radius
			bounce := -body.VelocityY * cfg.Ball.Restitution
			if bounce < cfg.Physics.RestingSpeed {
				bounce = 0
				body.Grounded = true
			}
			body.VelocityY = bounce
		}
	}

	if y < cfg.Physics.KillHeight {
		respawn(e)
		return
	}

	rollBall(t, body.Body.Velocity(), ball.Radius, dt)
	t.Position = mgl64.Vec3{pos.X, y, pos.Y}
}

// SupportHeight returns the highest platform top under the planar point
// (x, z) that is not above bottom. Platforms the ball is already below do
// not catch it.
func SupportHeight(platforms []*donburi.Entry, x, z, bottom float64) (float64, bool) {
	best := math.Inf(-1)
	found := false
	for _, e := range platforms {
		platform := components.Platform.Get(e)
		if platform.Shape == nil {
			continue
		}
		if platform.Shape.PointQuery(cp.Vector{X: x, Y: z}).Distance > 0 {
			continue
		}
		top := platform.Top(components.Transform.Get(e))
		if top > bottom+supportEpsilon {
			continue
		}
		if top > best {
			best = top
			found = true
		}
	}
	return best, found
}

// rollBall turns the ball's orientation to match rolling without slipping.
func rollBall(t *components.TransformData, v cp.Vector, radius, dt float64) {
	planar := mgl64.Vec3{v.X, 0, v.Y}
	speed := planar.Len()
	if speed == 0 || radius <= 0 {
		return
	}
	axis := cfg.Motion.Up.Cross(planar).Normalize()
	t.Rotation = mgl64.QuatRotate(speed*dt/radius, axis).Mul(t.Rotation).Normalize()
}

func respawn(e *donburi.Entry) {
	body := components.Body.Get(e)
	ball := components.Ball.Get(e)
	t := components.Transform.Get(e)

	body.Body.SetPosition(cp.Vector{X: ball.Spawn.X(), Y: ball.Spawn.Z()})
	body.Body.SetVelocity(0, 0)
	body.Body.SetForce(cp.Vector{})
	body.VelocityY = 0
	body.Grounded = false
	t.Position = ball.Spawn
	t.Rotation = mgl64.QuatIdent()

	log.Info("ball fell off, respawning", "ball", entityName(e), "spawn", ball.Spawn)
}

func entityName(e *donburi.Entry) string {
	if e.HasComponent(components.Name) {
		return components.Name.Get(e).Name
	}
	return "unnamed"
}
