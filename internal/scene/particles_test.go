package scene

import (
	"math/rand"
	"testing"
)

func TestGenerateField(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	points := GenerateField(500, 25, rng)
	if len(points) != 500 {
		t.Fatalf("len = %d, want 500", len(points))
	}
	for i, p := range points {
		for _, v := range []float64{p.X, p.Y, p.Z} {
			if v < -12.5 || v > 12.5 {
				t.Fatalf("point %d = %+v outside [-12.5, 12.5]^3", i, p)
			}
		}
	}
}

func TestGenerateFieldEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	if got := GenerateField(0, 25, rng); got != nil {
		t.Errorf("GenerateField(0) = %v, want nil", got)
	}
	if got := GenerateField(-5, 25, rng); got != nil {
		t.Errorf("GenerateField(-5) = %v, want nil", got)
	}
}
