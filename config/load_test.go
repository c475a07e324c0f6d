package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverlaysOnlyPresentKeys(t *testing.T) {
	t.Cleanup(Reset)

	err := Parse([]byte(`
motion:
  speed: 3
  jump_cooldown: 1500ms
ball:
  spawn: [1, 4, -2]
platform:
  platforms:
    - half_extents: [2, 0.2, 2]
      position: [0, 0, 0]
    - half_extents: [1, 0.1, 1]
      position: [6, 1, 0]
`))
	require.NoError(t, err)

	assert.Equal(t, 3.0, Motion.Speed)
	assert.Equal(t, 1500*time.Millisecond, Motion.JumpCooldown)
	assert.Equal(t, 2.0, Motion.JumpImpulse, "untouched keys keep defaults")
	assert.Equal(t, mgl64.Vec3{1, 4, -2}, Ball.Spawn)
	assert.Equal(t, 0.5, Ball.Radius)
	require.Len(t, Platform.Platforms, 2)
	assert.Equal(t, mgl64.Vec3{6, 1, 0}, Platform.Platforms[1].Position)
}

func TestParseRebindsKeys(t *testing.T) {
	t.Cleanup(Reset)

	require.NoError(t, Parse([]byte(`
input:
  bindings:
    jump: [J]
`)))

	assert.Equal(t, ActionJump, Input.ActionForKey(ebiten.KeyJ))
	assert.Equal(t, ActionNone, Input.ActionForKey(ebiten.KeySpace))
	assert.Equal(t, ActionForward, Input.ActionForKey(ebiten.KeyArrowUp))
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero_radius", "ball:\n  radius: 0\n"},
		{"negative_speed", "motion:\n  speed: -1\n"},
		{"parallel_basis", "motion:\n  forward: [0, 1, 0]\n"},
		{"flat_platform", "platform:\n  platforms:\n    - half_extents: [1, 0, 1]\n"},
		{"zero_tps", "window:\n  tps: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(Reset)
			assert.Error(t, Parse([]byte(tt.yaml)))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Cleanup(Reset)

	t.Run("missing_explicit_path", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("explicit_path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rollball.yaml")
		require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 5\n"), 0o644))

		used, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, used)
		assert.Equal(t, 5.0, Physics.Gravity)
	})
}

func TestActionIDString(t *testing.T) {
	assert.Equal(t, "forward", ActionForward.String())
	assert.Equal(t, "jump", ActionJump.String())
	assert.Equal(t, "none", ActionCount.String())
}
