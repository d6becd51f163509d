package flick

import "github.com/go-gl/mathgl/mgl64"

// Region is the rectangular playable area of the surface, centered on the
// origin of the horizontal X/Z plane. Margin insets the usable area per
// object kind so larger objects stay fully visible. A Region is treated as
// immutable during an enforcement pass.
type Region struct {
	HalfWidth  float64 // extent along X
	HalfHeight float64 // extent along Z
	Margin     map[ObjectKind]float64
}

func (r Region) margin(kind ObjectKind) float64 {
	return r.Margin[kind]
}

// ClampPoint returns p moved to the nearest point inside the region inset
// by the kind's margin. Y is preserved.
func (r Region) ClampPoint(p mgl64.Vec3, kind ObjectKind) mgl64.Vec3 {
	m := r.margin(kind)
	limX := r.HalfWidth - m
	limZ := r.HalfHeight - m

	if p[0] > limX {
		p[0] = limX
	} else if p[0] < -limX {
		p[0] = -limX
	}
	if p[2] > limZ {
		p[2] = limZ
	} else if p[2] < -limZ {
		p[2] = -limZ
	}
	return p
}

// Enforce keeps a body inside the region with an energy-lossy rebound.
// Each horizontal axis is handled independently: a position beyond the
// limit is clamped to it and that axis's velocity is redirected inward at
// restitution times its incoming speed. Axes already in bounds are left
// untouched, so a body resting exactly on the limit with no outward
// velocity never jitters. A body found arbitrarily far outside (after an
// external teleport) is clamped the same way, no questions asked.
//
// Run this every simulation step on every tracked body, after all
// manipulation-driven updates and after the physics integration for the
// tick, so corrections are never immediately overwritten.
func (r Region) Enforce(b Body, kind ObjectKind, restitution float64) {
	m := r.margin(kind)
	limX := r.HalfWidth - m
	limZ := r.HalfHeight - m

	pos := b.Position()
	vel := b.Velocity()
	changed := false

	if pos[0] > limX {
		pos[0] = limX
		vel[0] = -abs(vel[0]) * restitution
		changed = true
	} else if pos[0] < -limX {
		pos[0] = -limX
		vel[0] = abs(vel[0]) * restitution
		changed = true
	}

	if pos[2] > limZ {
		pos[2] = limZ
		vel[2] = -abs(vel[2]) * restitution
		changed = true
	} else if pos[2] < -limZ {
		pos[2] = -limZ
		vel[2] = abs(vel[2]) * restitution
		changed = true
	}

	if changed {
		b.SetPosition(pos)
		b.SetVelocity(vel)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
