package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const (
	meterX      = 8
	meterY      = 96
	meterWidth  = 160
	meterHeight = 8
)

// UpdateHUD restarts the cooldown meter whenever the ball jumps and advances it
// otherwise.
func UpdateHUD(ecs *ecs.ECS) {
	hud := components.HUD.Get(getOrCreateSettingsEntry(ecs))
	dt := float32(GetOrCreateClock(ecs).DeltaSeconds())

	ball := MustControlledBall(ecs.World)
	if components.ExternalImpulse.Get(ball).Impulse.Len() > 0 && cfg.Motion.JumpCooldown > 0 {
		hud.CooldownMeter = gween.New(1, 0, float32(cfg.Motion.JumpCooldown.Seconds()), ease.OutQuad)
		hud.MeterValue = 1
		return
	}

	if hud.CooldownMeter == nil {
		return
	}
	value, finished := hud.CooldownMeter.Update(dt)
	hud.MeterValue = value
	if finished {
		hud.CooldownMeter = nil
		hud.MeterValue = 0
	}
}

func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	ball := MustControlledBall(ecs.World)
	t := components.Transform.Get(ball)
	force := components.ExternalForce.Get(ball).Force
	body := components.Body.Get(ball)
	input := components.Input.Get(ball)
	clock := GetOrCreateClock(ecs)

	lines := fmt.Sprintf(
		"t=%.2fs  frame=%d\npos   (%.2f, %.2f, %.2f)\nforce (%.2f, %.2f, %.2f)\nvy %.2f grounded=%v\nkeys F:%v B:%v L:%v R:%v J:%v",
		clock.Elapsed.Seconds(), clock.Frame,
		t.Position.X(), t.Position.Y(), t.Position.Z(),
		force.X(), force.Y(), force.Z(),
		body.VelocityY, body.Grounded,
		input.Forward, input.Backward, input.Left, input.Right, input.Jump,
	)
	ebitenutil.DebugPrintAt(screen, lines, meterX, 8)

	hud := components.HUD.Get(getOrCreateSettingsEntry(ecs))
	vector.FillRect(screen, meterX, meterY, meterWidth, meterHeight, cfg.MeterBgColor, false)
	if hud.MeterValue > 0 {
		vector.FillRect(screen, meterX, meterY, meterWidth*hud.MeterValue, meterHeight, meterColor(hud.MeterValue), false)
	}
}

func meterColor(v float32) color.Color {
	if v > 0.5 {
		return cfg.Red
	}
	return cfg.Yellow
}
