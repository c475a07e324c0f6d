package factory

import (
	"math"

	"github.com/automoto/rollball/archetypes"
	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBall spawns the controlled ball at position. All input flags start
// released and the jump cooldown starts unset.
func CreateBall(ecs *ecs.ECS, space *cp.Space, radius float64, position mgl64.Vec3) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	mass := cfg.Ball.Mass
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: position.X(), Y: position.Z()})
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, cp.Vector{}, math.Pow(cfg.Physics.RollingDamping, dt), dt)
	})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetElasticity(cfg.Ball.Restitution)
	space.AddBody(body)
	space.AddShape(shape)

	components.Ball.SetValue(ball, components.BallData{
		Radius: radius,
		Spawn:  position,
	})
	components.Input.SetValue(ball, components.InputData{})
	components.JumpCooldown.SetValue(ball, components.JumpCooldownData{})
	components.ExternalForce.SetValue(ball, components.ExternalForceData{})
	components.ExternalImpulse.SetValue(ball, components.ExternalImpulseData{})
	components.Transform.SetValue(ball, components.TransformData{
		Position: position,
		Rotation: mgl64.QuatIdent(),
	})
	components.Body.SetValue(ball, components.BodyData{
		Body:  body,
		Shape: shape,
		Mass:  mass,
	})
	components.Name.SetValue(ball, components.NameData{Name: "ball"})

	return ball
}
