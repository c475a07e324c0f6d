package systems

import (
	"testing"
	"time"

	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/automoto/rollball/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const vecTolerance = 1e-9

// newTestECS returns an empty world with the input tracker registered and
// default configuration restored after the test.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	RegisterInputTracker(e.World)
	return e
}

// newTestScene builds the default scene and returns its ball.
func newTestScene(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := newTestECS(t)
	return e, factory.CreateScene(e)
}

// step runs one frame of the simulation systems with a fixed dt.
func step(e *ecs.ECS, dt time.Duration) {
	StepClock(GetOrCreateClock(e), dt)
	ProcessInputs(e)
	UpdateBalls(e)
	UpdatePlatforms(e)
	UpdatePhysics(e)
}

func assertVec(t *testing.T, want, got mgl64.Vec3, tolerance float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tolerance, "component %d of %v vs %v", i, got, want)
	}
}

func firstSpace(t *testing.T, e *ecs.ECS) *cp.Space {
	t.Helper()
	entry, ok := components.Space.First(e.World)
	require.True(t, ok, "scene has no physics space")
	return components.Space.Get(entry).Space
}

func createExtraBall(e *ecs.ECS, space *cp.Space) *donburi.Entry {
	return factory.CreateBall(e, space, cfg.Ball.Radius, mgl64.Vec3{2, 3, 0})
}
