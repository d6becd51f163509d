package flick

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRayIntersectHorizontal(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		height float64
		want   mgl64.Vec3
		ok     bool
	}{
		{
			"straight down",
			Ray{Origin: mgl64.Vec3{0.3, 1, -0.2}, Dir: mgl64.Vec3{0, -1, 0}},
			0,
			mgl64.Vec3{0.3, 0, -0.2}, true,
		},
		{
			"angled",
			Ray{Origin: mgl64.Vec3{0, 2, 0}, Dir: mgl64.Vec3{1, -1, 0}},
			0,
			mgl64.Vec3{2, 0, 0}, true,
		},
		{
			"elevated plane",
			Ray{Origin: mgl64.Vec3{0, 2, 0}, Dir: mgl64.Vec3{0, -1, 0}},
			0.5,
			mgl64.Vec3{0, 0.5, 0}, true,
		},
		{
			"parallel",
			Ray{Origin: mgl64.Vec3{0, 1, 0}, Dir: mgl64.Vec3{1, 0, 0}},
			0,
			mgl64.Vec3{}, false,
		},
		{
			"plane behind origin",
			Ray{Origin: mgl64.Vec3{0, 1, 0}, Dir: mgl64.Vec3{0, 1, 0}},
			0,
			mgl64.Vec3{}, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectHorizontal(tt.height)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !vecNear(got, tt.want) {
				t.Errorf("hit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopDownProjector(t *testing.T) {
	p := TopDownProjector{ScreenW: 200, ScreenH: 200, UnitsPerPx: 0.01, EyeHeight: 1}

	tests := []struct {
		name string
		x, y float64
		want mgl64.Vec3 // surface hit at height 0
	}{
		{"center", 100, 100, mgl64.Vec3{0, 0, 0}},
		{"right", 150, 100, mgl64.Vec3{0.5, 0, 0}},
		{"top-left", 0, 0, mgl64.Vec3{-1, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := p.ScreenRay(tt.x, tt.y).IntersectHorizontal(0)
			if !ok {
				t.Fatal("top-down ray must hit the surface")
			}
			if !vecNear(hit, tt.want) {
				t.Errorf("hit = %v, want %v", hit, tt.want)
			}
		})
	}

	// The ray points straight down from the eye height.
	ray := p.ScreenRay(100, 100)
	if ray.Origin[1] != 1 || math.Abs(ray.Dir[1]+1) > 1e-12 {
		t.Errorf("ray = %+v, want origin at eye height pointing down", ray)
	}
}
