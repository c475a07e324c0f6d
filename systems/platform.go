package systems

import (
	"math"

	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/automoto/rollball/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms spins every platform around the up axis at a constant rate.
func UpdatePlatforms(ecs *ecs.ECS) {
	angle := GetOrCreateClock(ecs).DeltaSeconds() * cfg.Platform.RotationRate

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		RotatePlatform(components.Transform.Get(e), angle, cfg.Motion.Up)
	})
}

// RotatePlatform turns t by angle radians around axis, in world space.
func RotatePlatform(t *components.TransformData, angle float64, axis mgl64.Vec3) {
	if angle == 0 {
		return
	}
	t.Rotation = mgl64.QuatRotate(angle, axis.Normalize()).Mul(t.Rotation).Normalize()
}

// planarAngle returns the rotation of q projected on the x/z plane, measured
// the way the physics space measures body angles (x toward z).
func planarAngle(q mgl64.Quat) float64 {
	v := q.Rotate(mgl64.Vec3{1, 0, 0})
	return math.Atan2(v.Z(), v.X())
}
