package behavior

import "github.com/go-gl/mathgl/mgl64"

// stuckTracker accumulates time spent with negligible displacement. It is
// owned exclusively by the LocomotionDriver.
type stuckTracker struct {
	lastPos   mgl64.Vec3
	hasLast   bool
	lowTime   float64
	minSpeed  float64
	threshold float64
}

// observe feeds one movement sample into the tracker.
func (t *stuckTracker) observe(pos mgl64.Vec3, dt float64) {
	if !t.hasLast {
		t.lastPos = pos
		t.hasLast = true
		return
	}
	if dt <= 0 {
		return
	}
	displacement := pos.Sub(t.lastPos).Len()
	if displacement >= t.minSpeed*dt {
		t.lowTime = 0
	} else {
		t.lowTime += dt
	}
	t.lastPos = pos
}

func (t *stuckTracker) stuck() bool {
	return t.lowTime >= t.threshold
}

func (t *stuckTracker) reset() {
	t.lowTime = 0
	t.hasLast = false
}

// LocomotionDriver advances the controlled body toward a destination one tick
// at a time, keeping it attached to whatever surface lies along the path. It
// never discards a destination itself; it only reports arrival and stuck
// state so the owning behavior can replan.
type LocomotionDriver struct {
	body    Transform
	caster  RayCaster
	sampler *SurfaceSampler
	params  LocomotionParams
	offset  float64 // body offset along the surface normal

	// Surface state. currentNormal is the interpolated normal the aligner
	// tracks; targetNormal is the raw normal of the last accepted hit.
	targetNormal mgl64.Vec3
	onSurface    bool

	stuck stuckTracker

	// Counters for host telemetry.
	obstacleRefusals int
}

// NewLocomotionDriver creates a driver for the given body.
func NewLocomotionDriver(body Transform, caster RayCaster, sampler *SurfaceSampler, params LocomotionParams, surface SurfaceParams) *LocomotionDriver {
	return &LocomotionDriver{
		body:         body,
		caster:       caster,
		sampler:      sampler,
		params:       params,
		offset:       surface.Offset,
		targetNormal: worldUp,
		stuck: stuckTracker{
			minSpeed:  params.MinProgressSpeed,
			threshold: params.StuckThreshold,
		},
	}
}

// TargetNormal returns the raw normal of the surface the body is attached to,
// or world up when unattached.
func (d *LocomotionDriver) TargetNormal() mgl64.Vec3 { return d.targetNormal }

// OnSurface reports whether the body is currently attached to a surface.
func (d *LocomotionDriver) OnSurface() bool { return d.onSurface }

// Stuck reports whether the body has made no meaningful progress for longer
// than the stuck threshold. The caller is expected to discard the current
// destination and replan; calling this repeatedly is harmless.
func (d *LocomotionDriver) Stuck() bool { return d.stuck.stuck() }

// ResetStuck clears the progress tracker, typically after a destination
// change.
func (d *LocomotionDriver) ResetStuck() { d.stuck.reset() }

// ObstacleRefusals returns the number of movement steps refused because the
// path ray hit an opposing surface.
func (d *LocomotionDriver) ObstacleRefusals() int { return d.obstacleRefusals }

// ResetSurface re-samples the surface at the body's current location and
// attaches to it, falling back to world up when nothing is found. Called on
// crawl entry.
func (d *LocomotionDriver) ResetSurface() {
	d.stuck.reset()
	if sp, ok := d.sampler.FindSurface(d.body.Position(), d.targetNormal); ok {
		d.targetNormal = sp.Normal
		d.onSurface = true
		return
	}
	d.targetNormal = worldUp
	d.onSurface = false
}

// MoveToward advances the body toward dest by at most speed*dt, snapping to
// the surface found along the path. It returns false exactly when the
// remaining distance is already within the acceptance radius (in which case
// the body is not moved), true while still under way - including steps
// refused because of an obstacle, which stuck detection eventually breaks.
func (d *LocomotionDriver) MoveToward(dest mgl64.Vec3, dt, speed float64, acceptanceRadius float64) bool {
	cur := d.body.Position()
	delta := dest.Sub(cur)
	remaining := delta.Len()

	// Arrived, or degenerate direction that must not be normalized.
	if remaining <= acceptanceRadius || remaining*remaining < nearZeroLen {
		return false
	}

	dir := delta.Mul(1 / remaining)
	step := speed * dt
	if step > remaining {
		step = remaining
	}
	next := cur.Add(dir.Mul(step))

	// Probe slightly past the step so grazing contacts still register.
	probeEnd := cur.Add(dir.Mul(step + d.offset))

	if hit, ok := d.caster.CastRay(cur, probeEnd); ok {
		normal, valid := safeNormalize(hit.Normal, worldUp)
		if valid && dir.Dot(normal) < d.params.ObstacleDotThreshold {
			// The face opposes the direction of travel: an obstacle, not a
			// surface to crawl onto. Refuse the step and re-ground where we
			// stand so the body never penetrates geometry.
			d.obstacleRefusals++
			if sp, found := d.sampler.FindSurface(cur, d.targetNormal); found {
				d.body.SetPosition(sp.Point)
				d.targetNormal = sp.Normal
				d.onSurface = true
			}
			d.stuck.observe(d.body.Position(), dt)
			return true
		}
		if valid {
			// Traversable surface along the path: snap onto it.
			d.body.SetPosition(hit.Point.Add(normal.Mul(d.offset)))
			d.targetNormal = normal
			d.onSurface = true
			d.stuck.observe(d.body.Position(), dt)
			return true
		}
	}

	// Nothing along the path; look for a surface at the intended point.
	if sp, found := d.sampler.FindSurface(next, d.targetNormal); found {
		d.body.SetPosition(sp.Point)
		d.targetNormal = sp.Normal
		d.onSurface = true
		d.stuck.observe(d.body.Position(), dt)
		return true
	}

	// Open space between surfaces: move unattached. The normal relaxes back
	// to world up; the last valid orientation is retained until alignment
	// catches up.
	d.body.SetPosition(next)
	d.targetNormal = worldUp
	d.onSurface = false
	d.stuck.observe(d.body.Position(), dt)
	return true
}
