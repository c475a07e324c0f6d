package systems

import (
	"testing"

	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyKeyEvent(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	tests := []struct {
		name  string
		key   ebiten.Key
		bound bool
		want  components.InputData
	}{
		{"up_is_forward", ebiten.KeyArrowUp, true, components.InputData{Forward: true}},
		{"down_is_backward", ebiten.KeyArrowDown, true, components.InputData{Backward: true}},
		{"left", ebiten.KeyArrowLeft, true, components.InputData{Left: true}},
		{"right", ebiten.KeyArrowRight, true, components.InputData{Right: true}},
		{"space_is_jump", ebiten.KeySpace, true, components.InputData{Jump: true}},
		{"unbound_ignored", ebiten.KeyQ, false, components.InputData{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input components.InputData
			assert.Equal(t, tt.bound, ApplyKeyEvent(&input, components.KeyEvent{Key: tt.key, Pressed: true}))
			assert.Equal(t, tt.want, input)

			ApplyKeyEvent(&input, components.KeyEvent{Key: tt.key, Pressed: false})
			assert.Equal(t, components.InputData{}, input, "release clears the flag")
		})
	}
}

func TestProcessInputsDrainsQueueInOrder(t *testing.T) {
	e, ball := newTestScene(t)

	publish := func(key ebiten.Key, pressed bool) {
		components.KeyTransition.Publish(e.World, components.KeyEvent{Key: key, Pressed: pressed})
	}
	publish(ebiten.KeyArrowUp, true)
	publish(ebiten.KeySpace, true)
	publish(ebiten.KeyZ, true)
	publish(ebiten.KeyArrowUp, false)
	publish(ebiten.KeyArrowLeft, true)

	input := components.Input.Get(ball)
	require.Equal(t, components.InputData{}, *input, "nothing applies before the tracker runs")

	ProcessInputs(e)

	assert.Equal(t, components.InputData{Jump: true, Left: true}, *input)

	// Queue is empty now, flags stay as they were.
	ProcessInputs(e)
	assert.Equal(t, components.InputData{Jump: true, Left: true}, *input)
}

func TestProcessInputsHonoursRebinding(t *testing.T) {
	e, ball := newTestScene(t)
	cfg.Input.Bind(cfg.ActionJump, ebiten.KeyJ)

	components.KeyTransition.Publish(e.World, components.KeyEvent{Key: ebiten.KeySpace, Pressed: true})
	components.KeyTransition.Publish(e.World, components.KeyEvent{Key: ebiten.KeyJ, Pressed: true})
	ProcessInputs(e)

	assert.True(t, components.Input.Get(ball).Jump)
	assert.Equal(t, cfg.ActionNone, cfg.Input.ActionForKey(ebiten.KeySpace))
}
