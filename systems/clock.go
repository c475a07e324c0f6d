package systems

import (
	"time"

	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances simulated time by one fixed step.
// Must run FIRST so every later system sees this frame's time.
func UpdateClock(ecs *ecs.ECS) {
	StepClock(GetOrCreateClock(ecs), time.Second/time.Duration(cfg.C.TPS))
}

// StepClock advances c by dt.
func StepClock(c *components.ClockData, dt time.Duration) {
	c.Delta = dt
	c.Elapsed += dt
	c.Frame++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
