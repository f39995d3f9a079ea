package nbody

import (
	"math/rand"
	"testing"
)

func randomBodies(n int, seed int64) []Body {
	rng := rand.New(rand.NewSource(seed))
	bodies := make([]Body, n)
	for i := range bodies {
		bodies[i] = Body{
			Pos:    Vec3{rng.Float64()*200 - 100, rng.Float64()*200 - 100, rng.Float64()*200 - 100},
			Vel:    Vec3{rng.Float64()*2 - 1, rng.Float64()*2 - 1, rng.Float64()*2 - 1},
			Mass:   rng.Float64()*10 + 0.1,
			Radius: rng.Float64(),
		}
	}
	return bodies
}

func TestExtentsContainsAllBodies(t *testing.T) {
	bodies := randomBodies(200, 1)
	xmin, xmax, ymin, ymax, zmin, zmax := Extents(bodies)
	for _, b := range bodies {
		if b.Pos.X < xmin || b.Pos.X > xmax {
			t.Fatalf("body X %v outside [%v,%v]", b.Pos.X, xmin, xmax)
		}
		if b.Pos.Y < ymin || b.Pos.Y > ymax {
			t.Fatalf("body Y %v outside [%v,%v]", b.Pos.Y, ymin, ymax)
		}
		if b.Pos.Z < zmin || b.Pos.Z > zmax {
			t.Fatalf("body Z %v outside [%v,%v]", b.Pos.Z, zmin, zmax)
		}
	}
}

func TestMedianPartitionOrdering(t *testing.T) {
	bodies := randomBodies(201, 2)
	splitValue, splitIndex := MedianPartition(bodies, AxisX)

	for i := 0; i < splitIndex; i++ {
		if bodies[i].Pos.X > splitValue {
			t.Errorf("lower partition element %d has X=%v > split value %v", i, bodies[i].Pos.X, splitValue)
		}
	}
	for i := splitIndex; i < len(bodies); i++ {
		if bodies[i].Pos.X < splitValue {
			t.Errorf("upper partition element %d has X=%v < split value %v", i, bodies[i].Pos.X, splitValue)
		}
	}
	if bodies[splitIndex].Pos.X != splitValue {
		t.Errorf("bodies[splitIndex].Pos.X = %v, want %v", bodies[splitIndex].Pos.X, splitValue)
	}
}

func TestMedianPartitionEvenLength(t *testing.T) {
	bodies := randomBodies(50, 3)
	_, splitIndex := MedianPartition(bodies, AxisY)
	if splitIndex != len(bodies)/2 {
		t.Errorf("splitIndex = %d, want %d", splitIndex, len(bodies)/2)
	}
}
