package behavior

import (
	"math"
	"math/rand"
	"testing"
)

// TestRangeSwappedBounds verifies bounds may be given in either order.
func TestRangeSwappedBounds(t *testing.T) {
	r := NewRand(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		v := r.Range(5, 2)
		if v < 2 || v > 5 {
			t.Fatalf("Range(5, 2) = %f, want value in [2, 5]", v)
		}
	}
}

// TestRangeDegenerate verifies equal bounds return the bound itself.
func TestRangeDegenerate(t *testing.T) {
	r := NewRand(rand.New(rand.NewSource(42)))

	if v := r.Range(3, 3); v != 3 {
		t.Errorf("Range(3, 3) = %f, want 3", v)
	}
}

// TestChanceExtremes verifies the degenerate probabilities.
func TestChanceExtremes(t *testing.T) {
	r := NewRand(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}

// TestUnitVectorMagnitude verifies sampled directions are unit length.
func TestUnitVectorMagnitude(t *testing.T) {
	r := NewRand(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		v := r.UnitVector()
		if d := math.Abs(v.Len() - 1); d > 1e-9 {
			t.Fatalf("UnitVector() length = %f", v.Len())
		}
	}
}

// TestYawPitchDirectionBounds verifies the vertical component respects the
// pitch range.
func TestYawPitchDirectionBounds(t *testing.T) {
	r := NewRand(rand.New(rand.NewSource(42)))

	tests := []struct {
		name     string
		minPitch float64
		maxPitch float64
		minZ     float64
		maxZ     float64
	}{
		{name: "downward only", minPitch: -45, maxPitch: 0, minZ: -math.Sqrt2 / 2, maxZ: 0},
		{name: "upward only", minPitch: 0, maxPitch: 45, minZ: 0, maxZ: math.Sqrt2 / 2},
		{name: "transition range", minPitch: -75, maxPitch: 75, minZ: -0.97, maxZ: 0.97},
	}

	const eps = 1e-9
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				v := r.YawPitchDirection(tc.minPitch, tc.maxPitch)
				if d := math.Abs(v.Len() - 1); d > eps {
					t.Fatalf("direction length = %f", v.Len())
				}
				if v.Z() < tc.minZ-eps || v.Z() > tc.maxZ+eps {
					t.Fatalf("Z = %f, want in [%f, %f]", v.Z(), tc.minZ, tc.maxZ)
				}
			}
		})
	}
}
