package flick

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func testRegion() Region {
	return Region{
		HalfWidth:  1.0,
		HalfHeight: 0.6,
		Margin: map[ObjectKind]float64{
			KindFile:    0.04,
			KindContent: 0.10,
		},
	}
}

func TestEnforce_BounceEnergyLoss(t *testing.T) {
	r := testRegion()
	// 0.05 beyond the limit, moving outward at 1 unit/s.
	b := NewSimBody(mgl64.Vec3{1.0 - 0.04 + 0.05, 0, 0.1}, 1)
	b.SetVelocity(mgl64.Vec3{1.0, 0, 0.3})

	r.Enforce(b, KindFile, 0.5)

	pos := b.Position()
	vel := b.Velocity()
	if math.Abs(pos[0]-0.96) > 1e-12 {
		t.Errorf("position.x = %v, want clamped to 0.96", pos[0])
	}
	if math.Abs(vel[0]-(-0.5)) > 1e-12 {
		t.Errorf("velocity.x = %v, want -0.5 after damped rebound", vel[0])
	}
	if vel[2] != 0.3 {
		t.Errorf("velocity.z = %v, want unchanged 0.3", vel[2])
	}
	if pos[2] != 0.1 {
		t.Errorf("position.z = %v, want unchanged 0.1", pos[2])
	}
}

func TestEnforce_Idempotent(t *testing.T) {
	r := testRegion()
	// Exactly on both limits, built from the region's own arithmetic so
	// float rounding cannot put the body a hair outside.
	m := r.Margin[KindFile]
	rest := mgl64.Vec3{r.HalfWidth - m, 0, -(r.HalfHeight - m)}
	b := NewSimBody(rest, 1)

	for i := 0; i < 10; i++ {
		r.Enforce(b, KindFile, 0.5)
	}
	if pos := b.Position(); pos != rest {
		t.Errorf("resting body moved to %v", pos)
	}
	if vel := b.Velocity(); vel.Len() != 0 {
		t.Errorf("resting body gained velocity %v", vel)
	}
}

func TestEnforce_BothSides(t *testing.T) {
	r := testRegion()

	tests := []struct {
		name    string
		pos     mgl64.Vec3
		vel     mgl64.Vec3
		wantPos mgl64.Vec3
		wantVel mgl64.Vec3
	}{
		{
			"min x",
			mgl64.Vec3{-1.5, 0, 0}, mgl64.Vec3{-2, 0, 0},
			mgl64.Vec3{-0.96, 0, 0}, mgl64.Vec3{1, 0, 0},
		},
		{
			"max z",
			mgl64.Vec3{0, 0, 0.7}, mgl64.Vec3{0, 0, 0.8},
			mgl64.Vec3{0, 0, 0.56}, mgl64.Vec3{0, 0, -0.4},
		},
		{
			"corner",
			mgl64.Vec3{2, 0, -2}, mgl64.Vec3{1, 0, -1},
			mgl64.Vec3{0.96, 0, -0.56}, mgl64.Vec3{-0.5, 0, 0.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewSimBody(tt.pos, 1)
			b.SetVelocity(tt.vel)
			r.Enforce(b, KindFile, 0.5)

			if got := b.Position(); !vecNear(got, tt.wantPos) {
				t.Errorf("position = %v, want %v", got, tt.wantPos)
			}
			if got := b.Velocity(); !vecNear(got, tt.wantVel) {
				t.Errorf("velocity = %v, want %v", got, tt.wantVel)
			}
		})
	}
}

func TestEnforce_InwardVelocityStaysInward(t *testing.T) {
	r := testRegion()
	// Teleported outside but already heading back in: the rebound must not
	// flip it outward again.
	b := NewSimBody(mgl64.Vec3{1.5, 0, 0}, 1)
	b.SetVelocity(mgl64.Vec3{-2, 0, 0})

	r.Enforce(b, KindFile, 0.5)
	if vel := b.Velocity(); vel[0] >= 0 {
		t.Errorf("velocity.x = %v, want inward (negative)", vel[0])
	}
}

func TestEnforce_KindMargins(t *testing.T) {
	r := testRegion()
	b := NewSimBody(mgl64.Vec3{0.95, 0, 0}, 1)

	// Inside the file limit (0.96) but outside the content limit (0.90).
	r.Enforce(b, KindFile, 0.5)
	if pos := b.Position(); pos[0] != 0.95 {
		t.Errorf("file position.x = %v, want untouched 0.95", pos[0])
	}

	r.Enforce(b, KindContent, 0.5)
	if pos := b.Position(); math.Abs(pos[0]-0.90) > 1e-12 {
		t.Errorf("content position.x = %v, want clamped to 0.90", pos[0])
	}
}

func TestClampPoint(t *testing.T) {
	r := testRegion()

	tests := []struct {
		name string
		in   mgl64.Vec3
		kind ObjectKind
		want mgl64.Vec3
	}{
		{"inside untouched", mgl64.Vec3{0.5, 0.2, -0.1}, KindFile, mgl64.Vec3{0.5, 0.2, -0.1}},
		{"clamp x", mgl64.Vec3{3, 0, 0}, KindFile, mgl64.Vec3{0.96, 0, 0}},
		{"clamp both", mgl64.Vec3{-3, 0.1, 3}, KindContent, mgl64.Vec3{-0.9, 0.1, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ClampPoint(tt.in, tt.kind); !vecNear(got, tt.want) {
				t.Errorf("ClampPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}
