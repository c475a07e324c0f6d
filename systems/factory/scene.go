package factory

import (
	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScene builds the sandbox from the current configuration and returns
// the controlled ball.
func CreateScene(ecs *ecs.ECS) *donburi.Entry {
	CreateClock(ecs)
	space := components.Space.Get(CreateSpace(ecs)).Space

	for _, p := range cfg.Platform.Platforms {
		CreatePlatform(ecs, space, p.HalfExtents, p.Position)
	}

	ball := CreateBall(ecs, space, cfg.Ball.Radius, cfg.Ball.Spawn)
	CreateCamera(ecs, cfg.Ball.Spawn.X(), cfg.Ball.Spawn.Z())
	return ball
}
