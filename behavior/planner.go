package behavior

import "github.com/go-gl/mathgl/mgl64"

// DestinationPlanner proposes crawl destinations by casting rays along biased
// random directions. Attempt count is bounded so a tick can never loop
// indefinitely when no geometry is reachable.
type DestinationPlanner struct {
	caster  RayCaster
	sampler *SurfaceSampler
	rand    *Rand
	params  PlannerParams
	surface SurfaceParams
}

// NewDestinationPlanner creates a planner over the given ray service.
func NewDestinationPlanner(caster RayCaster, sampler *SurfaceSampler, rand *Rand, params PlannerParams, surface SurfaceParams) *DestinationPlanner {
	return &DestinationPlanner{
		caster:  caster,
		sampler: sampler,
		rand:    rand,
		params:  params,
		surface: surface,
	}
}

// Propose picks the next crawl destination within patrolRange of origin.
// currentNormal biases the direction distribution; wantTransition widens the
// pitch range and makes the planner hold out for a surface whose normal
// diverges from the current one. Returns false when every attempt and the
// floor fallback miss; the caller retries on a later tick.
func (p *DestinationPlanner) Propose(origin mgl64.Vec3, patrolRange float64, currentNormal mgl64.Vec3, wantTransition bool) (SurfacePoint, bool) {
	var fallback SurfacePoint
	haveFallback := false

	for attempt := 0; attempt < p.params.MaxAttempts; attempt++ {
		dir := p.sampleDirection(currentNormal, wantTransition)
		dist := p.rand.Range(patrolRange*p.params.MinDistanceMultiplier, patrolRange)

		hit, ok := p.caster.CastRay(origin, origin.Add(dir.Mul(dist)))
		if !ok {
			continue
		}
		normal, ok := safeNormalize(hit.Normal, worldUp)
		if !ok {
			continue
		}

		candidate := SurfacePoint{
			Point:  hit.Point.Add(normal.Mul(p.surface.Offset)),
			Normal: normal,
		}

		// Divergent surfaces are what make transitions happen; take one the
		// moment it shows up.
		if clampedDot(normal, currentNormal) < p.params.TransitionDotThreshold {
			return candidate, true
		}

		if !wantTransition {
			// Not holding out for a different surface: first hit wins.
			return candidate, true
		}

		if !haveFallback {
			fallback = candidate
			haveFallback = true
		}
	}

	if haveFallback {
		return fallback, true
	}

	// Floor recovery before giving up.
	return p.sampler.FindFloor(origin)
}

// sampleDirection draws a candidate direction conditioned on the current
// surface orientation.
func (p *DestinationPlanner) sampleDirection(currentNormal mgl64.Vec3, wantTransition bool) mgl64.Vec3 {
	minPitch := p.params.MinPitchDeg
	maxPitch := p.params.MaxPitchDeg
	if wantTransition {
		minPitch = p.params.MinTransitionPitchDeg
		maxPitch = p.params.MaxTransitionPitchDeg
	}

	if currentNormal.Dot(currentNormal) < nearZeroLen {
		return p.rand.UnitVector()
	}

	vertical := clampedDot(currentNormal, worldUp)
	if vertical < 0 {
		vertical = -vertical
	}

	switch {
	case vertical >= p.params.HorizontalDotThreshold:
		// On a floor or ceiling: favor horizontal and downward directions so
		// the body works its way toward edges and down walls.
		return p.rand.YawPitchDirection(minPitch, 0)
	case vertical <= p.params.VerticalDotThreshold:
		// On a wall: mostly climb.
		if p.rand.Chance(p.params.UpwardBiasChance) {
			return p.rand.YawPitchDirection(0, maxPitch)
		}
		return p.rand.YawPitchDirection(minPitch, maxPitch)
	default:
		return p.rand.UnitVector()
	}
}
