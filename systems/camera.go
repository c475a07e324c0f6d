package systems

import (
	"fmt"

	"github.com/automoto/rollball/components"
	"github.com/automoto/rollball/config"
	"github.com/automoto/rollball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var ballQuery = query.NewQuery(filter.Contains(tags.Ball))

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	ball := MustControlledBall(e.World)
	pos := components.Transform.Get(ball).Position

	// Center the camera on the ball's ground position, with some smoothing.
	camera.Position.X += (pos.X() - camera.Position.X) * config.Camera.Smoothing
	camera.Position.Y += (pos.Z() - camera.Position.Y) * config.Camera.Smoothing
}

// MustControlledBall returns the only controlled ball. Views that follow a
// single ball cannot run with zero or several, so that is a setup bug.
func MustControlledBall(w donburi.World) *donburi.Entry {
	if n := ballQuery.Count(w); n != 1 {
		panic(fmt.Sprintf("expected exactly one controlled ball, found %d", n))
	}
	entry, _ := ballQuery.First(w)
	return entry
}
