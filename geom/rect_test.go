package geom

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestIntersects(t *testing.T) {
	base := New(0, 0, 64, 64)

	cases := []struct {
		name  string
		other AABB
		want  bool
	}{
		{"overlap", New(32, 32, 64, 64), true},
		{"contained", New(10, 10, 4, 4), true},
		{"touching_right_edge", New(64, 0, 64, 64), false},
		{"touching_bottom_edge", New(0, 64, 64, 64), false},
		{"one_pixel_overlap", New(63, 63, 64, 64), true},
		{"apart", New(200, 200, 10, 10), false},
		{"zero_width", New(10, 10, 0, 10), false},
		{"zero_height", New(10, 10, 10, 0), false},
		{"negative_size", New(10, 10, -5, 10), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Intersects(base, c.other); got != c.want {
				t.Fatalf("Intersects(%v, %v) = %v, want %v", base, c.other, got, c.want)
			}
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("intersection should be symmetric for %v", c.other)
			}
		})
	}
}

func TestCenterAndTranslate(t *testing.T) {
	box := New(10, 20, 64, 32)
	if c := box.Center(); c.X != 42 || c.Y != 36 {
		t.Fatalf("unexpected center %v", c)
	}
	moved := box.Translate(cp.Vector{X: -10, Y: 5})
	if moved.X != 0 || moved.Y != 25 || moved.W != 64 || moved.H != 32 {
		t.Fatalf("unexpected translated box %v", moved)
	}
	bb := box.BB()
	if bb.L != 10 || bb.B != 20 || bb.R != 74 || bb.T != 52 {
		t.Fatalf("unexpected bb %v", bb)
	}
}
