package factory

import (
	"fmt"

	"github.com/automoto/rollball/archetypes"
	"github.com/automoto/rollball/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a box platform. Its footprint is a kinematic sensor
// in the space so it can be rotated and queried without pushing the ball.
func CreatePlatform(ecs *ecs.ECS, space *cp.Space, halfExtents, position mgl64.Vec3) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: position.X(), Y: position.Z()})
	shape := cp.NewBox(body, halfExtents.X()*2, halfExtents.Z()*2, 0)
	shape.SetSensor(true)
	space.AddBody(body)
	space.AddShape(shape)

	components.Platform.SetValue(platform, components.PlatformData{
		HalfExtents: halfExtents,
		Body:        body,
		Shape:       shape,
	})
	components.Transform.SetValue(platform, components.TransformData{
		Position: position,
		Rotation: mgl64.QuatIdent(),
	})
	components.Name.SetValue(platform, components.NameData{
		Name: fmt.Sprintf("platform-%d", platform.Entity().Id()),
	})

	return platform
}
