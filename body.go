package flick

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Body is the narrow contract with the physics engine. The core reads and
// writes position and velocity, toggles kinematic mode while an object is
// being driven by a pointer, and applies throw impulses. It never creates
// or destroys bodies and never touches collision shapes.
type Body interface {
	Position() mgl64.Vec3
	Velocity() mgl64.Vec3
	SetPosition(mgl64.Vec3)
	SetVelocity(mgl64.Vec3)
	SetKinematic(bool)
	ApplyImpulse(mgl64.Vec3)
}

// --- Reference implementation ---

// SimBody is a minimal dynamic body: damped Euler integration on the
// horizontal plane with a speed cap. It exists so the examples and tests
// have believable free motion without an external physics engine; it is
// not a rigid-body solver and does no collision between bodies.
type SimBody struct {
	pos  mgl64.Vec3
	vel  mgl64.Vec3
	mass float64

	// Damping is an exponential decay rate in 1/seconds applied to
	// velocity each step. MaxSpeed caps speed to prevent tunneling
	// through the boundary on a single step; zero means uncapped.
	Damping  float64
	MaxSpeed float64

	kinematic bool
}

// NewSimBody creates a dynamic body at rest with the given mass. A
// non-positive mass is treated as 1.
func NewSimBody(pos mgl64.Vec3, mass float64) *SimBody {
	if mass <= 0 {
		mass = 1
	}
	return &SimBody{pos: pos, mass: mass, Damping: 1.2, MaxSpeed: 12}
}

func (b *SimBody) Position() mgl64.Vec3     { return b.pos }
func (b *SimBody) Velocity() mgl64.Vec3     { return b.vel }
func (b *SimBody) SetPosition(p mgl64.Vec3) { b.pos = p }
func (b *SimBody) SetVelocity(v mgl64.Vec3) { b.vel = v }

// SetKinematic switches the body between externally driven and freely
// simulated modes. A kinematic body ignores Step and ApplyImpulse.
func (b *SimBody) SetKinematic(kinematic bool) {
	b.kinematic = kinematic
}

// Kinematic reports whether the body is currently externally driven.
func (b *SimBody) Kinematic() bool {
	return b.kinematic
}

// Mass returns the body's mass.
func (b *SimBody) Mass() float64 {
	return b.mass
}

// ApplyImpulse adds impulse/mass to the body's velocity. Ignored while
// kinematic.
func (b *SimBody) ApplyImpulse(impulse mgl64.Vec3) {
	if b.kinematic {
		return
	}
	b.vel = b.vel.Add(impulse.Mul(1.0 / b.mass))
}

// Step advances the body by dt seconds: position by velocity, then
// exponential damping and the speed cap. Kinematic bodies do not move.
func (b *SimBody) Step(dt float64) {
	if b.kinematic || dt <= 0 {
		return
	}
	b.pos = b.pos.Add(b.vel.Mul(dt))
	b.vel = b.vel.Mul(math.Exp(-b.Damping * dt))

	if b.MaxSpeed > 0 {
		if speed := b.vel.Len(); speed > b.MaxSpeed {
			b.vel = b.vel.Mul(b.MaxSpeed / speed)
		}
	}
}
