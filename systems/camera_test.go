package systems

import (
	"testing"

	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestMustControlledBall(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		e := newTestECS(t)
		assert.PanicsWithValue(t, "expected exactly one controlled ball, found 0", func() {
			MustControlledBall(e.World)
		})
	})

	t.Run("one", func(t *testing.T) {
		e, ball := newTestScene(t)
		assert.Equal(t, ball.Entity(), MustControlledBall(e.World).Entity())
	})

	t.Run("two", func(t *testing.T) {
		e, _ := newTestScene(t)
		createExtraBall(e, firstSpace(t, e))
		assert.PanicsWithValue(t, "expected exactly one controlled ball, found 2", func() {
			MustControlledBall(e.World)
		})
	})
}

func TestUpdateCameraEasesTowardBall(t *testing.T) {
	e, ball := newTestScene(t)
	components.Transform.Get(ball).Position = mgl64.Vec3{10, 0.6, -4}

	UpdateCamera(e)

	entry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(entry)
	assert.InDelta(t, 10*cfg.Camera.Smoothing, camera.Position.X, 1e-9)
	assert.InDelta(t, -4*cfg.Camera.Smoothing, camera.Position.Y, 1e-9)

	for i := 0; i < 500; i++ {
		UpdateCamera(e)
	}
	assert.InDelta(t, 10, camera.Position.X, 1e-6)
	assert.InDelta(t, -4, camera.Position.Y, 1e-6)
}
