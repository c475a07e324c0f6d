package archetypes

import (
	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/automoto/rollball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Input,
		components.JumpCooldown,
		components.ExternalForce,
		components.ExternalImpulse,
		components.Transform,
		components.Body,
		components.Name,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Transform,
		components.Name,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
		components.HUD,
		components.Heartbeat,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
