package viz

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/attractors/internal/dynamo"
)

const (
	DefaultCameraDistance = 5.0
	DefaultMagnification  = 20.0
	DefaultOffsetX        = 100
)

// Camera orbits the vertical axis. Angle grows every frame and is never
// wrapped; sin/cos periodicity does that.
type Camera struct {
	Angle         float64
	Distance      float64
	Magnification float64
	OffsetX       int
}

func NewCamera() *Camera {
	return &Camera{Distance: DefaultCameraDistance, Magnification: DefaultMagnification, OffsetX: DefaultOffsetX}
}

func (c *Camera) Advance(step float64) { c.Angle += step }

// Rotation returns [[cos a, 0, -sin a], [0, 1, 0], [sin a, 0, cos a]].
func (c *Camera) Rotation() mgl64.Mat3 {
	sin, cos := math.Sincos(c.Angle)
	return mgl64.Mat3FromRows(
		mgl64.Vec3{cos, 0, -sin},
		mgl64.Vec3{0, 1, 0},
		mgl64.Vec3{sin, 0, cos},
	)
}

// Projector binds a camera pose to a screen so a whole frame can be
// projected with one rotation matrix.
func (c *Camera) Projector(width, height int) Projector {
	return Projector{
		rot:      c.Rotation(),
		distance: c.Distance,
		mag:      c.Magnification,
		cx:       float64(width/2 + c.OffsetX),
		cy:       float64(height / 2),
	}
}

// Project maps p to screen coordinates for the camera's current angle.
func (c *Camera) Project(p dynamo.Point3, width, height int) ScreenPoint {
	return c.Projector(width, height).Project(p)
}

// Project maps p to screen coordinates as seen from angle with the default
// camera distance, magnification and offset.
func Project(p dynamo.Point3, width, height int, angle float64) ScreenPoint {
	cam := NewCamera()
	cam.Angle = angle
	return cam.Project(p, width, height)
}

type Projector struct {
	rot      mgl64.Mat3
	distance float64
	mag      float64
	cx, cy   float64
}

// Project rotates p, computes the perspective depth factor, drops z and
// scales/translates to pixels. The depth factor is reported but not
// applied to x and y, so the image is orthographic.
func (pr Projector) Project(p dynamo.Point3) ScreenPoint {
	r := pr.rot.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z})
	return ScreenPoint{
		X:     math.Round(r[0]*pr.mag) + pr.cx,
		Y:     math.Round(r[1]*pr.mag) + pr.cy,
		Depth: 1 / (pr.distance - r[2]),
	}
}

// ScreenPoint is a projected position. X and Y are integral unless the
// input diverged, in which case they may be huge or non-finite.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// Pixel is an integer screen coordinate.
type Pixel struct {
	X, Y int32
}

// Pixel converts the projected position to an integer pixel. It fails with
// dynamo.ErrUnrepresentable when either coordinate is NaN, infinite or
// outside the int32 range.
func (s ScreenPoint) Pixel() (Pixel, error) {
	x, okX := toInt32(s.X)
	y, okY := toInt32(s.Y)
	if !okX || !okY {
		return Pixel{}, fmt.Errorf("pixel (%g, %g): %w", s.X, s.Y, dynamo.ErrUnrepresentable)
	}
	return Pixel{x, y}, nil
}

func toInt32(v float64) (int32, bool) {
	if math.IsNaN(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}
