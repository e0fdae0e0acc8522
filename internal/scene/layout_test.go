package scene

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func TestComputeLayoutCardinality(t *testing.T) {
	for _, n := range []int{0, 1, 2, 6, 17, 100} {
		got := ComputeLayout(n, 8, nil)
		if len(got) != n {
			t.Errorf("ComputeLayout(%d, 8) returned %d placements", n, len(got))
		}
	}
	if got := ComputeLayout(-3, 8, nil); got != nil {
		t.Errorf("ComputeLayout(-3, 8) = %v, want nil", got)
	}
}

func TestComputeLayoutCircularInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 6, 13, 50} {
		for _, radius := range []float64{0.5, 8, 100} {
			for _, p := range ComputeLayout(n, radius, UniformJitter(rng, DefaultJitterSpread)) {
				dist := math.Hypot(p.X, p.Z)
				if math.Abs(dist-radius) > 1e-6 {
					t.Errorf("n=%d r=%g index=%d: sqrt(x²+z²) = %g, want %g", n, radius, p.Index, dist, radius)
				}
				if p.Total != n {
					t.Errorf("p.Total = %d, want %d", p.Total, n)
				}
			}
		}
	}
}

func TestComputeLayoutSingleObject(t *testing.T) {
	got := ComputeLayout(1, 8, nil)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	p := got[0]
	if math.Abs(p.X-8) > epsilon || math.Abs(p.Z) > epsilon || p.Y != 0 {
		t.Errorf("sole object at (%g, %g, %g), want (8, 0, 0)", p.X, p.Y, p.Z)
	}
}

func TestComputeLayoutSixObjectAngles(t *testing.T) {
	got := ComputeLayout(6, 8, nil)
	for i, p := range got {
		wantAngle := 2 * math.Pi * float64(i) / 6
		gotAngle := math.Atan2(p.Z, p.X)
		if gotAngle < 0 {
			gotAngle += 2 * math.Pi
		}
		if math.Abs(gotAngle-wantAngle) > 1e-6 && math.Abs(gotAngle-wantAngle-2*math.Pi) > 1e-6 {
			t.Errorf("index %d at angle %g rad, want %g rad", i, gotAngle, wantAngle)
		}
	}
}

func TestUniformJitterBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	jitter := UniformJitter(rng, DefaultJitterSpread)
	for i := 0; i < 1000; i++ {
		y := jitter(i)
		if y < -DefaultJitterSpread || y > DefaultJitterSpread {
			t.Fatalf("jitter(%d) = %g outside [-2, 2]", i, y)
		}
	}
}

func TestStableJitterDeterminism(t *testing.T) {
	ids := []string{"a-1", "b-2", "c-3"}
	first := StableJitter(ids, DefaultJitterSpread)
	second := StableJitter(ids, DefaultJitterSpread)
	for i := range ids {
		a, b := first(i), second(i)
		if a != b {
			t.Errorf("StableJitter index %d: %g vs %g", i, a, b)
		}
		if a < -DefaultJitterSpread || a > DefaultJitterSpread {
			t.Errorf("StableJitter index %d = %g outside spread", i, a)
		}
	}
	if y := first(len(ids)); y != 0 {
		t.Errorf("out-of-range index jitter = %g, want 0", y)
	}

	// Reordering the list moves offsets with their IDs.
	reordered := StableJitter([]string{"c-3", "b-2", "a-1"}, DefaultJitterSpread)
	if reordered(0) != first(2) {
		t.Error("jitter should follow the ID, not the index")
	}
}
