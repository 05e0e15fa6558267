package behavior

import "github.com/go-gl/mathgl/mgl64"

// Hit is a single ray-query result. Hits are ephemeral; nothing retains them
// past the sampling pass that produced them.
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// RayCaster is the ray intersection query service the engine consumes.
// CastRay reports the nearest blocking intersection along the segment from
// `from` to `to`, or false if nothing blocks it. Implementations must exclude
// the controlled body itself.
type RayCaster interface {
	CastRay(from, to mgl64.Vec3) (Hit, bool)
}

// SurfacePoint is a crawlable point together with the surface normal there.
type SurfacePoint struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// traceDirections is the fixed world-space probe set used for surface
// discovery. World axes, not body axes, so walls and ceilings are found
// regardless of the body's current orientation.
var traceDirections = [6]mgl64.Vec3{
	{0, 0, 1},  // up
	{0, 0, -1}, // down
	{1, 0, 0},  // forward
	{-1, 0, 0}, // back
	{0, 1, 0},  // left
	{0, -1, 0}, // right
}

// Scoring weights for candidate surfaces: proximity dominates, alignment with
// the current surface keeps the walk continuous across adjoining faces.
const (
	distanceWeight  = 0.7
	alignmentWeight = 0.3
)

// SurfaceSampler discovers the best nearby surface with a six-direction ray
// sweep.
type SurfaceSampler struct {
	caster RayCaster
	params SurfaceParams
}

// NewSurfaceSampler creates a sampler over the given ray service.
func NewSurfaceSampler(caster RayCaster, params SurfaceParams) *SurfaceSampler {
	return &SurfaceSampler{caster: caster, params: params}
}

// FindSurface probes the six world axes from p and returns the best-scoring
// surface, offset along its normal so the body does not embed in geometry.
// currentNormal biases the score toward faces aligned with the surface the
// body is already on; pass the zero vector when there is no current surface.
// Returns false when no direction hits anything, in which case the caller
// must treat the body as unattached and leave its surface normal alone.
func (s *SurfaceSampler) FindSurface(p, currentNormal mgl64.Vec3) (SurfacePoint, bool) {
	hasCurrent := currentNormal.Dot(currentNormal) >= nearZeroLen

	var best SurfacePoint
	bestScore := -1.0
	found := false

	for _, dir := range traceDirections {
		end := p.Add(dir.Mul(s.params.DetectionRange))
		hit, ok := s.caster.CastRay(p, end)
		if !ok {
			continue
		}

		normal, ok := safeNormalize(hit.Normal, worldUp)
		if !ok {
			continue
		}

		score := distanceWeight * (1 - hit.Distance/s.params.DetectionRange)
		if hasCurrent {
			// Map the normal agreement from [-1,1] to [0,1].
			score += alignmentWeight * (clampedDot(currentNormal, normal) + 1) * 0.5
		} else {
			score += alignmentWeight * 0.5
		}

		if score > bestScore {
			bestScore = score
			best = SurfacePoint{
				Point:  hit.Point.Add(normal.Mul(s.params.Offset)),
				Normal: normal,
			}
			found = true
		}
	}

	return best, found
}

// FindFloor runs the straight-down recovery probe around p and returns the
// floor surface if one is within the fallback distances.
func (s *SurfaceSampler) FindFloor(p mgl64.Vec3) (SurfacePoint, bool) {
	from := p.Add(worldUp.Mul(s.params.FallbackUpDistance))
	to := p.Sub(worldUp.Mul(s.params.FallbackDownDistance))
	hit, ok := s.caster.CastRay(from, to)
	if !ok {
		return SurfacePoint{}, false
	}
	normal, ok := safeNormalize(hit.Normal, worldUp)
	if !ok {
		return SurfacePoint{}, false
	}
	return SurfacePoint{
		Point:  hit.Point.Add(normal.Mul(s.params.Offset)),
		Normal: normal,
	}, true
}
