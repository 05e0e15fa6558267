package behavior

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Rand wraps an injected *rand.Rand with the sampling helpers the engine
// needs. It is not safe for concurrent use; each engine instance owns one.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a sampler around the given source.
func NewRand(rng *rand.Rand) *Rand {
	return &Rand{rng: rng}
}

// Range returns a uniform value in [a, b]. Bounds may be given in either
// order; swapped bounds never matter.
func (r *Rand) Range(a, b float64) float64 {
	lo := math.Min(a, b)
	hi := math.Max(a, b)
	return lo + r.rng.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.rng.Float64() < p
}

// UnitVector returns a direction distributed uniformly over the sphere.
func (r *Rand) UnitVector() mgl64.Vec3 {
	z := 2*r.rng.Float64() - 1
	phi := 2 * math.Pi * r.rng.Float64()
	s := math.Sqrt(1 - z*z)
	return mgl64.Vec3{s * math.Cos(phi), s * math.Sin(phi), z}
}

// YawPitchDirection builds a unit direction from a uniform yaw and a pitch
// drawn from [minPitchDeg, maxPitchDeg]. Positive pitch points above the
// horizon.
func (r *Rand) YawPitchDirection(minPitchDeg, maxPitchDeg float64) mgl64.Vec3 {
	yaw := r.Range(-math.Pi, math.Pi)
	pitch := mgl64.DegToRad(r.Range(minPitchDeg, maxPitchDeg))
	return directionFromYawPitch(yaw, pitch)
}

// directionFromYawPitch converts spherical angles (radians) to a unit vector.
func directionFromYawPitch(yaw, pitch float64) mgl64.Vec3 {
	cp := math.Cos(pitch)
	return mgl64.Vec3{cp * math.Cos(yaw), cp * math.Sin(yaw), math.Sin(pitch)}
}
