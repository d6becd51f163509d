package flick

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line in surface space.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// IntersectHorizontal returns where the ray crosses the horizontal plane
// at the given height. ok is false when the ray is parallel to the plane
// or the plane lies behind the origin.
func (r Ray) IntersectHorizontal(height float64) (mgl64.Vec3, bool) {
	const eps = 1e-9
	if math.Abs(r.Dir[1]) < eps {
		return mgl64.Vec3{}, false
	}
	t := (height - r.Origin[1]) / r.Dir[1]
	if t < 0 {
		return mgl64.Vec3{}, false
	}
	return r.Origin.Add(r.Dir.Mul(t)), true
}

// Projector converts a screen position into a pick ray. It is supplied by
// the rendering layer; the core never assumes a particular camera model.
type Projector interface {
	ScreenRay(x, y float64) Ray
}

// TopDownProjector is a straight-down orthographic projector: screen
// pixels map linearly onto the surface plane, centered on the origin. It
// is the camera model used by the examples and tests.
type TopDownProjector struct {
	ScreenW, ScreenH float64 // screen size in pixels
	UnitsPerPx       float64 // surface units covered by one pixel
	EyeHeight        float64 // ray origin height above the surface
}

// ScreenRay returns a ray pointing straight down at the surface point
// under the pixel.
func (p TopDownProjector) ScreenRay(x, y float64) Ray {
	wx := (x - p.ScreenW/2) * p.UnitsPerPx
	wz := (y - p.ScreenH/2) * p.UnitsPerPx
	return Ray{
		Origin: mgl64.Vec3{wx, p.EyeHeight, wz},
		Dir:    mgl64.Vec3{0, -1, 0},
	}
}
