package flick

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// VecTween eases a body across the surface plane toward a target point.
// The body is made kinematic for the duration so free dynamics cannot
// fight the animation; when the tween completes the body is restored to
// dynamic mode at rest. Used for the double-tap recall animation.
//
// There is no global animation manager; the Surface calls Update each
// step for tweens it owns.
type VecTween struct {
	tweens [2]*gween.Tween
	body   Body
	planeY float64
	Done   bool
}

// NewVecTween starts easing body toward to (X/Z only; the body keeps its
// current height) over duration seconds.
func NewVecTween(body Body, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *VecTween {
	p := body.Position()
	t := &VecTween{body: body, planeY: p[1]}
	t.tweens[0] = gween.New(float32(p[0]), float32(to[0]), duration, fn)
	t.tweens[1] = gween.New(float32(p[2]), float32(to[2]), duration, fn)

	body.SetKinematic(true)
	body.SetVelocity(mgl64.Vec3{})
	return t
}

// Update advances the tween by dt seconds and writes the new position to
// the body. On completion the body is returned to dynamic mode.
func (t *VecTween) Update(dt float32) {
	if t.Done {
		return
	}

	x, doneX := t.tweens[0].Update(dt)
	z, doneZ := t.tweens[1].Update(dt)
	t.body.SetPosition(mgl64.Vec3{float64(x), t.planeY, float64(z)})

	if doneX && doneZ {
		t.body.SetVelocity(mgl64.Vec3{})
		t.body.SetKinematic(false)
		t.Done = true
	}
}

// Stop abandons the tween, restoring the body to dynamic mode at its
// current position. Called when a drag grabs a recalling object.
func (t *VecTween) Stop() {
	if t.Done {
		return
	}
	t.body.SetVelocity(mgl64.Vec3{})
	t.body.SetKinematic(false)
	t.Done = true
}

// ScaleTween eases a single scalar field, typically an object's display
// scale back to its resting value.
type ScaleTween struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// NewScaleTween starts easing *field to the target value over duration
// seconds.
func NewScaleTween(field *float64, to float64, duration float32, fn ease.TweenFunc) *ScaleTween {
	return &ScaleTween{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
	}
}

// Update advances the tween by dt seconds and writes the value.
func (t *ScaleTween) Update(dt float32) {
	if t.Done {
		return
	}
	v, done := t.tween.Update(dt)
	*t.field = float64(v)
	t.Done = done
}
