package behavior

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// TestBodyAxes verifies ForwardOf, UpOf and RightOf form a right-handed
// orthonormal basis for any orientation.
func TestBodyAxes(t *testing.T) {
	tests := []struct {
		name string
		orn  mgl64.Quat
	}{
		{name: "identity", orn: mgl64.QuatIdent()},
		{name: "yawed", orn: mgl64.QuatRotate(math.Pi/3, mgl64.Vec3{0, 0, 1})},
		{name: "pitched onto a wall", orn: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})},
		{name: "tumbled", orn: mgl64.QuatRotate(2.1, mgl64.Vec3{1, 1, 1}.Normalize())},
	}

	const eps = 1e-9
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fwd := ForwardOf(tc.orn)
			up := UpOf(tc.orn)
			right := RightOf(tc.orn)

			for _, axis := range []struct {
				name string
				v    mgl64.Vec3
			}{{"forward", fwd}, {"up", up}, {"right", right}} {
				if d := math.Abs(axis.v.Len() - 1); d > eps {
					t.Errorf("%s length = %f, want 1", axis.name, axis.v.Len())
				}
			}

			if d := math.Abs(fwd.Dot(up)); d > eps {
				t.Errorf("forward.up = %f, want 0", fwd.Dot(up))
			}
			// Right-handed: forward x up = right.
			cross := fwd.Cross(up)
			if cross.Sub(right).Len() > eps {
				t.Errorf("forward x up = %v, want right %v", cross, right)
			}
		})
	}
}

// TestBodyIdentityAxes pins the world-frame meaning of the identity
// orientation: X forward, Z up, -Y right.
func TestBodyIdentityAxes(t *testing.T) {
	body := NewBody(mgl64.Vec3{})

	if fwd := ForwardOf(body.Orientation()); fwd != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("forward = %v, want +X", fwd)
	}
	if up := UpOf(body.Orientation()); up != (mgl64.Vec3{0, 0, 1}) {
		t.Errorf("up = %v, want +Z", up)
	}
	if right := RightOf(body.Orientation()); right != (mgl64.Vec3{0, -1, 0}) {
		t.Errorf("right = %v, want -Y", right)
	}
}
