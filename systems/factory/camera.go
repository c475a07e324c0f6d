package factory

import (
	"github.com/automoto/rollball/archetypes"
	"github.com/automoto/rollball/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, z float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: math.NewVec2(x, z)})
}
