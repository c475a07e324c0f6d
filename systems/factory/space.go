package factory

import (
	"github.com/automoto/rollball/archetypes"
	"github.com/automoto/rollball/components"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the planar physics space. Gravity is zero because the
// space lies flat in x/z; height is handled by the physics system.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	cpSpace := cp.NewSpace()
	cpSpace.SetGravity(cp.Vector{})
	components.Space.Set(space, &components.SpaceData{Space: cpSpace})
	return space
}

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.Set(clock, &components.ClockData{})
	return clock
}
