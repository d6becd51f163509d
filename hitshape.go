package flick

// HitShape is an object's interactive footprint on the surface plane, in
// local coordinates centered on the body's position. dx runs along X and
// dz along Z, in surface units.
type HitShape interface {
	Contains(dx, dz float64) bool
}

// HitRect is an axis-aligned rectangular footprint.
type HitRect struct {
	HalfWidth, HalfDepth float64
}

// Contains reports whether the local offset lies inside the rectangle.
func (r HitRect) Contains(dx, dz float64) bool {
	return dx >= -r.HalfWidth && dx <= r.HalfWidth &&
		dz >= -r.HalfDepth && dz <= r.HalfDepth
}

// HitCircle is a circular footprint.
type HitCircle struct {
	Radius float64
}

// Contains reports whether the local offset lies inside or on the circle.
func (c HitCircle) Contains(dx, dz float64) bool {
	return dx*dx+dz*dz <= c.Radius*c.Radius
}
