package behavior

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// nearZeroLen is the squared-length floor below which a vector counts as
// degenerate.
const nearZeroLen = 1e-10

// worldUp is the global up axis. Surface normals fall back to it whenever
// surface contact is lost.
var worldUp = mgl64.Vec3{0, 0, 1}

// worldForward is the canonical forward axis, used as the last-resort
// reference when every projected forward is degenerate.
var worldForward = mgl64.Vec3{1, 0, 0}

// smoothStep converts an interpolation rate and a frame delta into a blend
// factor. Exponential form keeps the result frame-rate independent.
func smoothStep(dt, speed float64) float64 {
	if speed <= 0 {
		return 1
	}
	return 1 - math.Exp(-speed*dt)
}

// interpVec moves cur toward target at the given rate.
func interpVec(cur, target mgl64.Vec3, dt, speed float64) mgl64.Vec3 {
	return cur.Add(target.Sub(cur).Mul(smoothStep(dt, speed)))
}

// safeNormalize returns the unit vector of v, or (fallback, false) when v is
// too short to normalize.
func safeNormalize(v, fallback mgl64.Vec3) (mgl64.Vec3, bool) {
	if v.Dot(v) < nearZeroLen {
		return fallback, false
	}
	return v.Mul(1 / v.Len()), true
}

// clampedDot returns the dot product of two unit vectors clamped to [-1, 1],
// keeping it safe for inverse trigonometry.
func clampedDot(a, b mgl64.Vec3) float64 {
	return mgl64.Clamp(a.Dot(b), -1, 1)
}

// quatFromForwardUp builds the orientation whose forward axis is f and whose
// up axis is u. Both inputs must be unit length and orthogonal.
func quatFromForwardUp(f, u mgl64.Vec3) mgl64.Quat {
	l := u.Cross(f) // left completes the right-handed (forward, left, up) basis
	m := mgl64.Mat4{
		f[0], f[1], f[2], 0,
		l[0], l[1], l[2], 0,
		u[0], u[1], u[2], 0,
		0, 0, 0, 1,
	}
	return mgl64.Mat4ToQuat(m).Normalize()
}
