package scene

import (
	"hash/fnv"
	"math"
	"math/rand"
)

// DefaultJitterSpread is the half-range of the vertical offset: objects
// float within [-spread, +spread] around the ring plane.
const DefaultJitterSpread = 2.0

// Placement is one object's position for a single layout pass, along with
// the index and total used to compute it.
type Placement struct {
	Index int     `json:"index"`
	Total int     `json:"total"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

// JitterFunc returns the vertical offset for the object at index i.
type JitterFunc func(i int) float64

// ComputeLayout places count objects evenly on a ring of the given radius.
//
// Object i sits at angle 2πi/count, so x²+z² == radius² for every
// placement regardless of jitter. count == 0 returns an empty slice;
// count == 1 places the sole object at (radius, y, 0). A nil jitter
// leaves every object on the ring plane (y == 0).
func ComputeLayout(count int, radius float64, jitter JitterFunc) []Placement {
	if count <= 0 {
		return nil
	}

	placements := make([]Placement, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		var y float64
		if jitter != nil {
			y = jitter(i)
		}
		placements[i] = Placement{
			Index: i,
			Total: count,
			X:     radius * math.Cos(angle),
			Y:     y,
			Z:     radius * math.Sin(angle),
		}
	}
	return placements
}

// UniformJitter resamples a fresh offset in [-spread, +spread] on every
// call. Layouts built with it jump vertically on every recomputation;
// prefer StableJitter unless that flicker is wanted.
func UniformJitter(rng *rand.Rand, spread float64) JitterFunc {
	return func(int) float64 {
		return (rng.Float64()*2 - 1) * spread
	}
}

// StableJitter derives each object's vertical offset from its project ID,
// the same way shape and color are derived from the title. The offset is
// fixed for the life of the ID, so re-layouts triggered by selection
// changes or unrelated re-renders never move objects vertically.
//
// Indexes beyond len(ids) fall back to the ring plane.
func StableJitter(ids []string, spread float64) JitterFunc {
	return func(i int) float64 {
		if i < 0 || i >= len(ids) {
			return 0
		}
		h := fnv.New64a()
		h.Write([]byte(ids[i]))
		// Map the hash onto [-spread, +spread].
		unit := float64(h.Sum64()%100000) / 100000
		return (unit*2 - 1) * spread
	}
}
