package nbody

import (
	"math"
	"testing"
)

func TestGravityFromSkipsCoincidentBodies(t *testing.T) {
	acc := gravityFrom(Vec3{1, 1, 1}, Vec3{1, 1, 1}, 5)
	if acc != (Vec3{}) {
		t.Errorf("gravityFrom(coincident) = %+v, want zero vector", acc)
	}
}

func TestGravityFromInverseSquareDirection(t *testing.T) {
	acc := gravityFrom(Vec3{0, 0, 0}, Vec3{2, 0, 0}, 4)
	// delta = (2,0,0), |delta| = 2, |delta|^3 = 8, so acc = 4*(2,0,0)/8 = (1,0,0)
	want := Vec3{1, 0, 0}
	if math.Abs(acc.X-want.X) > 1e-12 || acc.Y != 0 || acc.Z != 0 {
		t.Errorf("gravityFrom = %+v, want %+v", acc, want)
	}
}

func TestGravityFromDoublingDistanceQuartersAcceleration(t *testing.T) {
	near := gravityFrom(Vec3{0, 0, 0}, Vec3{1, 0, 0}, 1)
	far := gravityFrom(Vec3{0, 0, 0}, Vec3{2, 0, 0}, 1)
	// Inverse-square law: the displacement doubles and |r|^3 grows eightfold,
	// so doubling the distance divides the magnitude by 4, not leaving it
	// proportional to the raw displacement as a missing cube would.
	ratio := near.X / far.X
	if math.Abs(ratio-4) > 1e-9 {
		t.Errorf("near/far acceleration ratio = %v, want 4 (inverse-square law)", ratio)
	}
}

func TestThetaExceededLargeThetaAlwaysApproximates(t *testing.T) {
	bodies := randomBodies(40, 20)
	tree := Build(bodies, Params{Theta: 1000, MaxPts: 1, Dt: 0.1})
	inter, ok := tree.Root.(*Interior)
	if !ok {
		t.Fatal("expected interior root")
	}
	if !thetaExceeded(bodies[0], inter, 1000) {
		t.Errorf("thetaExceeded should hold for a very large theta")
	}
}

func TestThetaExceededSmallThetaNeverApproximates(t *testing.T) {
	bodies := randomBodies(40, 21)
	tree := Build(bodies, Params{Theta: 1e-9, MaxPts: 1, Dt: 0.1})
	inter, ok := tree.Root.(*Interior)
	if !ok {
		t.Fatal("expected interior root")
	}
	if thetaExceeded(bodies[0], inter, 1e-9) {
		t.Errorf("thetaExceeded should not hold for a vanishingly small theta")
	}
}

func TestAccelerationNotDoubledAtRoot(t *testing.T) {
	// Two bodies far apart so the root's children are each opened directly
	// (theta very small forces full traversal to the leaves on both sides);
	// the total acceleration on body 0 must equal the single pairwise
	// contribution from body 1, not twice that.
	bodies := []Body{
		{Pos: Vec3{0, 0, 0}, Mass: 1},
		{Pos: Vec3{10, 0, 0}, Mass: 1},
	}
	tree := Build(bodies, Params{Theta: 1e-9, MaxPts: 1, Dt: 0.1})

	got := Acceleration(bodies[0], tree)
	want := gravityFrom(bodies[0].Pos, bodies[1].Pos, bodies[1].Mass)

	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 || math.Abs(got.Z-want.Z) > 1e-9 {
		t.Errorf("Acceleration = %+v, want %+v (not doubled)", got, want)
	}
}

func TestAccelerationApproximationConvergesToExact(t *testing.T) {
	bodies := randomBodies(60, 22)
	exactTree := Build(bodies, Params{Theta: 1e-9, MaxPts: 1, Dt: 0.1})
	approxTree := Build(bodies, Params{Theta: 0.8, MaxPts: 1, Dt: 0.1})

	target := bodies[0]
	exact := Acceleration(target, exactTree)
	approx := Acceleration(target, approxTree)

	diff := exact.Sub(approx)
	mag := math.Sqrt(diff.Dot(diff))
	exactMag := math.Sqrt(exact.Dot(exact))
	if mag > 0.5*exactMag {
		t.Errorf("approximate acceleration diverges too far from exact: |diff|=%v |exact|=%v", mag, exactMag)
	}
}
