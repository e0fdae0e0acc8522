package scene

import "math/rand"

// DefaultParticleCount and DefaultParticleExtent size the ambient
// background field. The field is pure decoration: no pick events are ever
// attributed to its points.
const (
	DefaultParticleCount  = 200
	DefaultParticleExtent = 25.0
)

// Point3 is one particle position.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// GenerateField samples n points uniformly in the cube
// [-extent/2, extent/2]^3.
//
// Callers are expected to generate the field once per scene mount and
// cache it (the Composer does); resampling per render tick causes visible
// flicker and turns an O(n) cost into O(n·frames).
func GenerateField(n int, extent float64, rng *rand.Rand) []Point3 {
	if n <= 0 {
		return nil
	}

	points := make([]Point3, n)
	for i := range points {
		points[i] = Point3{
			X: (rng.Float64() - 0.5) * extent,
			Y: (rng.Float64() - 0.5) * extent,
			Z: (rng.Float64() - 0.5) * extent,
		}
	}
	return points
}
