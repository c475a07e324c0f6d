package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// TransformData is the 3D pose shared by physics and rendering.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

var Transform = donburi.NewComponentType[TransformData](TransformData{Rotation: mgl64.QuatIdent()})

// BodyData links an entity to its planar Chipmunk body. The x/z plane maps to
// the body's X/Y; height is integrated separately.
type BodyData struct {
	Body      *cp.Body
	Shape     *cp.Shape
	Mass      float64
	VelocityY float64
	Grounded  bool
}

var Body = donburi.NewComponentType[BodyData]()

// PlatformData describes a box platform. Its shape is a sensor used only for
// support queries.
type PlatformData struct {
	HalfExtents mgl64.Vec3
	Body        *cp.Body
	Shape       *cp.Shape
}

// Top returns the height of the platform's upper face.
func (p *PlatformData) Top(t *TransformData) float64 {
	return t.Position.Y() + p.HalfExtents.Y()
}

var Platform = donburi.NewComponentType[PlatformData]()

type SpaceData struct {
	*cp.Space
}

var Space = donburi.NewComponentType[SpaceData]()
