package systems

import (
	"image/color"

	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the bounding box of every physics shape.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	proj := newProjection(ecs, screen)

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		if shape := components.Platform.Get(e).Shape; shape != nil {
			drawBB(screen, proj, shape.BB(), cfg.Cyan)
		}
	})
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if shape := components.Body.Get(e).Shape; shape != nil {
			drawBB(screen, proj, shape.BB(), cfg.Red)
		}
	})
}

func drawBB(screen *ebiten.Image, proj projection, bb cp.BB, c color.Color) {
	x0 := float32(proj.cx + (bb.L-proj.camX)*proj.scale)
	y0 := float32(proj.cy + (bb.B-proj.camZ)*proj.scale)
	w := float32((bb.R - bb.L) * proj.scale)
	h := float32((bb.T - bb.B) * proj.scale)

	// Draw outline
	vector.FillRect(screen, x0, y0, w, 1, c, false)     // Top
	vector.FillRect(screen, x0, y0+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x0, y0, 1, h, c, false)     // Left
	vector.FillRect(screen, x0+w-1, y0, 1, h, c, false) // Right
}
