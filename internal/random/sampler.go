// Package random provides the seedable sampling helpers used to launch lava
// bombs.
package random

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// unitSteps is the number of equal steps the unit interval is split into.
// Drawing k in [0, unitSteps] makes both interval ends reachable.
const unitSteps = 1 << 53

var up = mgl32.Vec3{0, 0, 1}

// Sampler is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding.
type Sampler struct {
	r *rand.Rand
}

// New creates a deterministic Sampler using the provided seed.
func New(seed int64) *Sampler {
	return &Sampler{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Reseed restarts the random stream from seed.
func (s *Sampler) Reseed(seed int64) {
	s.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Source exposes the underlying rand.Rand for advanced use.
func (s *Sampler) Source() *rand.Rand { return s.r }

// unit returns a value in [0, 1], both ends inclusive.
func (s *Sampler) unit() float64 {
	return float64(s.r.Uint64N(unitSteps+1)) / unitSteps
}

// UniformRange draws uniformly from [minimum, maximum].
func (s *Sampler) UniformRange(minimum, maximum float32) float32 {
	value := minimum + float32(s.unit()*float64(maximum-minimum))
	// float32 rounding may step past the upper bound for wide ranges.
	if value > maximum && maximum >= minimum {
		return maximum
	}
	return value
}

// Roll reports true with probability p.
func (s *Sampler) Roll(p float32) bool {
	return s.UniformRange(0, 1) <= p
}

// VectorInBox draws every component independently from [minimum, maximum].
func (s *Sampler) VectorInBox(minimum, maximum float32) mgl32.Vec3 {
	return mgl32.Vec3{
		s.UniformRange(minimum, maximum),
		s.UniformRange(minimum, maximum),
		s.UniformRange(minimum, maximum),
	}
}

// UnitVectorInUpwardsCone returns a unit vector whose elevation above the
// horizontal plane exceeds minAngleDegrees.
//
// Candidates are drawn from the box [-maxLength, maxLength]^3 and rejected
// when their length falls outside [minLength, maxLength] or when their angle
// from the horizontal plane is too shallow. The loop is uncapped; callers must
// keep 0 < minLength <= maxLength and minAngleDegrees < 90.
func (s *Sampler) UnitVectorInUpwardsCone(minAngleDegrees, minLength, maxLength float32) mgl32.Vec3 {
	// The angle is an elevation, so the bound on the dot product with "up" is
	// a sine rather than a cosine.
	minSine := float32(math.Sin(float64(mgl32.DegToRad(minAngleDegrees))))

	for {
		candidate := s.VectorInBox(-maxLength, maxLength)

		length := candidate.Len()
		if length < minLength || length > maxLength {
			continue
		}

		if candidate.Dot(up) > minSine*length {
			return candidate.Mul(1 / length)
		}
	}
}
