package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/rollball/components"
	"github.com/automoto/rollball/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

var up = mgl64.Vec3{0, 1, 0}

func TestRotatePlatformOneSecondIsOneRadian(t *testing.T) {
	tr := components.TransformData{Rotation: mgl64.QuatIdent()}

	for i := 0; i < 100; i++ {
		RotatePlatform(&tr, 0.01, up)
	}

	got := tr.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
	assertVec(t, mgl64.Vec3{math.Cos(1), 0, -math.Sin(1)}, got, 1e-9)
	assert.InDelta(t, -1.0, planarAngle(tr.Rotation), 1e-9)
}

func TestRotatePlatformPiSecondsIsHalfTurn(t *testing.T) {
	tr := components.TransformData{Rotation: mgl64.QuatIdent()}

	const steps = 1000
	for i := 0; i < steps; i++ {
		RotatePlatform(&tr, math.Pi/steps, up)
	}

	assertVec(t, mgl64.Vec3{-1, 0, 0}, tr.Rotation.Rotate(mgl64.Vec3{1, 0, 0}), 1e-9)
	assertVec(t, mgl64.Vec3{0, 0, -1}, tr.Rotation.Rotate(mgl64.Vec3{0, 0, 1}), 1e-9)
	assertVec(t, up, tr.Rotation.Rotate(up), 1e-9)
}

func TestUpdatePlatformsFollowsClock(t *testing.T) {
	e, _ := newTestScene(t)

	for i := 0; i < 100; i++ {
		StepClock(GetOrCreateClock(e), 10*time.Millisecond)
		UpdatePlatforms(e)
	}

	count := 0
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		count++
		rot := components.Transform.Get(entry).Rotation
		assertVec(t, mgl64.Vec3{math.Cos(1), 0, -math.Sin(1)}, rot.Rotate(mgl64.Vec3{1, 0, 0}), 1e-9)
	})
	require.Equal(t, 1, count)
}

func TestUpdatePlatformsIgnoresBall(t *testing.T) {
	e, ball := newTestScene(t)

	StepClock(GetOrCreateClock(e), time.Second)
	UpdatePlatforms(e)

	assert.Equal(t, mgl64.QuatIdent(), components.Transform.Get(ball).Rotation)
}
