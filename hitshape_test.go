package flick

import "testing"

func TestHitRectContains(t *testing.T) {
	r := HitRect{HalfWidth: 0.2, HalfDepth: 0.1}

	tests := []struct {
		name   string
		dx, dz float64
		want   bool
	}{
		{"center", 0, 0, true},
		{"corner", 0.2, 0.1, true},
		{"outside x", 0.21, 0, false},
		{"outside z", 0, -0.11, false},
		{"negative inside", -0.15, -0.05, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.dx, tt.dz); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.dx, tt.dz, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{Radius: 0.1}

	tests := []struct {
		name   string
		dx, dz float64
		want   bool
	}{
		{"center", 0, 0, true},
		{"on circumference", 0.1, 0, true},
		{"inside diagonal", 0.05, 0.05, true},
		{"outside", 0.08, 0.08, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.dx, tt.dz); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.dx, tt.dz, got, tt.want)
			}
		})
	}
}
