package flick

import "github.com/go-gl/mathgl/mgl64"

// dragBridge drives one body kinematically while its pointer is down and
// converts the accumulated motion into a throw impulse on release. One
// bridge exists per active drag; the Surface creates it after the
// manipulation lock is acquired and discards it when the drag ends.
type dragBridge struct {
	body Body
	kind ObjectKind
	cfg  *Config
	// region points into the owning Surface so a SetRegion mid-drag
	// applies to the next Move, same as the shared cfg.
	region *Region
	proj   Projector
	est    *VelocityEstimator
	guard  *Guard

	// planeY is the height of the reference plane pointer rays are cast
	// against. Fixed at drag start: intersecting against the object's own
	// mesh would add angle-dependent jitter.
	planeY float64
}

func newDragBridge(body Body, kind ObjectKind, cfg *Config, region *Region, proj Projector, guard *Guard) *dragBridge {
	b := &dragBridge{
		body:   body,
		kind:   kind,
		cfg:    cfg,
		region: region,
		proj:   proj,
		est:    NewVelocityEstimator(cfg.VelocityMaxSamples, cfg.VelocityMaxAgeMs, cfg.VelocityDecayMs),
		guard:  guard,
		planeY: body.Position()[1],
	}
	body.SetKinematic(true)
	body.SetVelocity(mgl64.Vec3{})
	return b
}

// Move projects the pointer onto the reference plane, smooths the body
// toward the hit point, clamps the result into the region, and drives the
// body there. The estimator is fed the post-smoothing, post-clamp position
// so the eventual throw reflects what actually moved, not operator intent.
func (d *dragBridge) Move(x, y, tMs float64) {
	hit, ok := d.proj.ScreenRay(x, y).IntersectHorizontal(d.planeY)
	if !ok {
		return
	}

	cur := d.body.Position()
	f := 1 - d.cfg.DragSmoothing
	next := mgl64.Vec3{
		cur[0] + (hit[0]-cur[0])*f,
		d.planeY,
		cur[2] + (hit[2]-cur[2])*f,
	}
	next = d.region.ClampPoint(next, d.kind)

	d.body.SetPosition(next)
	d.est.AddSample(next, tMs)
}

// End restores the body to free dynamics and, when the drag ends in a
// deliberate flick, applies a horizontal throw impulse. The lock guard is
// released last on every path.
func (d *dragBridge) End() {
	defer d.guard.Release()

	d.body.SetKinematic(false)

	if !d.est.HasEnoughSamples() {
		return
	}
	v := d.est.Velocity()
	v[1] = 0 // drag is planar; never throw vertically
	speed := v.Len()
	if speed < d.cfg.MinThrowSpeed {
		// A slow release is a put-down, not a throw.
		return
	}
	if maxSpeed := d.cfg.maxThrowSpeed(d.kind); speed > maxSpeed {
		v = v.Mul(maxSpeed / speed)
	}
	d.body.ApplyImpulse(v.Mul(d.cfg.ThrowMass))
}

// Cancel restores the body to free dynamics without ever applying an
// impulse, then releases the lock guard. Used for pointer-cancel and for
// the pointer leaving the interactive surface.
func (d *dragBridge) Cancel() {
	d.body.SetKinematic(false)
	d.guard.Release()
}
