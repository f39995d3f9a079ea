package nbody

import "math"

// Extents returns the axis-aligned bounding box of P.
func Extents(P []Body) (xmin, xmax, ymin, ymax, zmin, zmax float64) {
	xmin, ymin, zmin = math.MaxFloat64, math.MaxFloat64, math.MaxFloat64
	xmax, ymax, zmax = -math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64

	for _, b := range P {
		if b.Pos.X < xmin {
			xmin = b.Pos.X
		}
		if b.Pos.X > xmax {
			xmax = b.Pos.X
		}
		if b.Pos.Y < ymin {
			ymin = b.Pos.Y
		}
		if b.Pos.Y > ymax {
			ymax = b.Pos.Y
		}
		if b.Pos.Z < zmin {
			zmin = b.Pos.Z
		}
		if b.Pos.Z > zmax {
			zmax = b.Pos.Z
		}
	}
	return
}

// Spans returns the per-axis extent (max-min) of P.
func Spans(P []Body) (dx, dy, dz float64) {
	xmin, xmax, ymin, ymax, zmin, zmax := Extents(P)
	return xmax - xmin, ymax - ymin, zmax - zmin
}

// MedianPartition rearranges P in place so that P[:splitIndex] all have a
// coordinate on axis <= splitValue and P[splitIndex:] all have a coordinate
// on axis >= splitValue, then returns the median coordinate and its index.
// Pivot selection is the median of the first, middle, and last element —
// deterministic, so repeated builds over the same input always split the
// same way (a random pivot would make tree shape, and therefore floating
// point summation order, depend on an external source of randomness).
func MedianPartition(P []Body, axis Axis) (splitValue float64, splitIndex int) {
	k := len(P) / 2
	quickselect(P, 0, len(P)-1, k, axis)
	return P[k].Pos.Axis(axis), k
}

func quickselect(P []Body, lo, hi, k int, axis Axis) {
	for lo < hi {
		p := medianOfThreePivot(P, lo, hi, axis)
		p = partition(P, lo, hi, p, axis)
		switch {
		case k == p:
			return
		case k < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
}

// medianOfThreePivot returns the index (within [lo,hi]) of the median value
// among P[lo], P[mid], P[hi] on axis.
func medianOfThreePivot(P []Body, lo, hi int, axis Axis) int {
	mid := lo + (hi-lo)/2
	a, b, c := P[lo].Pos.Axis(axis), P[mid].Pos.Axis(axis), P[hi].Pos.Axis(axis)
	switch {
	case (a <= b && b <= c) || (c <= b && b <= a):
		return mid
	case (b <= a && a <= c) || (c <= a && a <= b):
		return lo
	default:
		return hi
	}
}

// partition performs a Lomuto partition of P[lo:hi+1] around the value at
// pivotIdx on axis, returning the pivot's final resting index.
func partition(P []Body, lo, hi, pivotIdx int, axis Axis) int {
	pivotValue := P[pivotIdx].Pos.Axis(axis)
	P[pivotIdx], P[hi] = P[hi], P[pivotIdx]

	store := lo
	for i := lo; i < hi; i++ {
		if P[i].Pos.Axis(axis) < pivotValue {
			P[i], P[store] = P[store], P[i]
			store++
		}
	}
	P[store], P[hi] = P[hi], P[store]
	return store
}
