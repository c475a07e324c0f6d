package systems

import (
	"math"

	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/automoto/rollball/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// projection maps world x/z onto the screen for a top-down camera.
type projection struct {
	camX, camZ float64
	cx, cy     float64
	scale      float64
}

func newProjection(e *ecs.ECS, screen *ebiten.Image) projection {
	p := projection{
		cx:    float64(screen.Bounds().Dx()) / 2,
		cy:    float64(screen.Bounds().Dy()) / 2,
		scale: cfg.Camera.PixelsPerUnit,
	}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		p.camX = camera.Position.X
		p.camZ = camera.Position.Y
	}
	return p
}

func (p projection) point(v mgl64.Vec3) (float32, float32) {
	return float32(p.cx + (v.X()-p.camX)*p.scale), float32(p.cy + (v.Z()-p.camZ)*p.scale)
}

// DrawPlatforms outlines every platform's top face.
func DrawPlatforms(e *ecs.ECS, screen *ebiten.Image) {
	proj := newProjection(e, screen)

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		t := components.Transform.Get(entry)
		hx, hz := platform.HalfExtents.X(), platform.HalfExtents.Z()

		corners := [4]mgl64.Vec3{{-hx, 0, -hz}, {hx, 0, -hz}, {hx, 0, hz}, {-hx, 0, hz}}
		for i := range corners {
			corners[i] = t.Rotation.Rotate(corners[i]).Add(t.Position)
		}
		for i := range corners {
			x0, y0 := proj.point(corners[i])
			x1, y1 := proj.point(corners[(i+1)%len(corners)])
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, cfg.Platform.Color, true)
		}

		// Spoke from the centre so the rotation is visible.
		cx, cy := proj.point(t.Position)
		sx, sy := proj.point(t.Rotation.Rotate(mgl64.Vec3{hx, 0, 0}).Add(t.Position))
		vector.StrokeLine(screen, cx, cy, sx, sy, 1, cfg.Platform.Color, true)
	})
}

// DrawBalls draws each ball with its shadow. Height shows as a larger disc.
func DrawBalls(e *ecs.ECS, screen *ebiten.Image) {
	proj := newProjection(e, screen)

	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		ball := components.Ball.Get(entry)
		t := components.Transform.Get(entry)

		x, y := proj.point(t.Position)
		r := ball.Radius * proj.scale
		lift := math.Max(0, t.Position.Y()-ball.Radius)

		vector.FillCircle(screen, x, y, float32(r), cfg.ShadowColor, true)
		drawn := float32(r * (1 + lift*cfg.Camera.HeightScale))
		vector.FillCircle(screen, x, y, drawn, cfg.Ball.Color, true)

		// Marker on the ball's surface; only the upper hemisphere faces the camera.
		marker := t.Rotation.Rotate(mgl64.Vec3{0, ball.Radius, 0})
		if marker.Y() > 0 {
			mx, my := proj.point(t.Position.Add(marker))
			vector.FillCircle(screen, mx, my, 2, cfg.White, true)
		}
	})
}
