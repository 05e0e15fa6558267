package behavior

import "github.com/go-gl/mathgl/mgl64"

// OrientationAligner keeps the body's up axis tracking the surface normal
// while preserving a usable forward heading. All interpolation is
// rate-and-dt based so the result is frame-rate independent.
type OrientationAligner struct {
	alignSpeed float64
	blendSpeed float64

	// normal is the blended surface normal, re-normalized after every
	// interpolation step.
	normal mgl64.Vec3
}

// NewOrientationAligner creates an aligner starting upright.
func NewOrientationAligner(params LocomotionParams) *OrientationAligner {
	return &OrientationAligner{
		alignSpeed: params.AlignmentSpeed,
		blendSpeed: params.DirectionBlendSpeed,
		normal:     worldUp,
	}
}

// Normal returns the blended surface normal the body is aligned against.
func (a *OrientationAligner) Normal() mgl64.Vec3 { return a.normal }

// Reset snaps the blended normal to n, typically on crawl entry.
func (a *OrientationAligner) Reset(n mgl64.Vec3) {
	if unit, ok := safeNormalize(n, worldUp); ok {
		a.normal = unit
		return
	}
	a.normal = worldUp
}

// Align rotates the body one step toward an orientation whose up axis is
// targetNormal. moveDir, when valid, is blended into the forward heading so
// the body visibly turns toward where it is going rather than only following
// the surface tangent.
func (a *OrientationAligner) Align(body Transform, targetNormal mgl64.Vec3, moveDir mgl64.Vec3, hasMoveDir bool, dt float64) {
	if a.alignSpeed <= 0 {
		return
	}

	target, ok := safeNormalize(targetNormal, a.normal)
	if !ok {
		target = a.normal
	}

	// Blend the tracked normal toward the target and re-normalize before use.
	blended := interpVec(a.normal, target, dt, a.alignSpeed)
	if unit, ok := safeNormalize(blended, target); ok {
		a.normal = unit
	} else {
		// Interpolating between opposed normals can pass through zero.
		a.normal = target
	}

	current := body.Orientation()
	forward := ForwardOf(current)
	// A non-positive blend speed disables the heading blend entirely, the
	// same way a non-positive alignment speed disables Align.
	if hasMoveDir && a.blendSpeed > 0 {
		if dir, ok := safeNormalize(moveDir, forward); ok {
			forward = interpVec(forward, dir, dt, a.blendSpeed)
		}
	}

	projected := a.projectForward(forward)

	targetOrn := quatFromForwardUp(projected, a.normal)
	next := mgl64.QuatSlerp(current, targetOrn, smoothStep(dt, a.alignSpeed))
	body.SetOrientation(next.Normalize())
}

// projectForward projects f onto the plane perpendicular to the tracked
// normal, substituting fallback axes when the projection degenerates.
func (a *OrientationAligner) projectForward(f mgl64.Vec3) mgl64.Vec3 {
	proj := f.Sub(a.normal.Mul(f.Dot(a.normal)))
	if unit, ok := safeNormalize(proj, worldForward); ok {
		return unit
	}

	// Forward was parallel to the normal; try the canonical axes in order.
	for _, axis := range [3]mgl64.Vec3{worldForward, {0, 1, 0}, worldUp} {
		proj = axis.Sub(a.normal.Mul(axis.Dot(a.normal)))
		if unit, ok := safeNormalize(proj, worldForward); ok {
			return unit
		}
	}

	// Unreachable for a unit normal, but never leave orientation undefined.
	return worldForward
}
