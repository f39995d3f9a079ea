package nbody

// Axis names a spatial dimension used for k-d splitting.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// MaxSide returns the largest side of b — the cell size used by the
// Barnes-Hut opening criterion.
func (b Bounds) MaxSide() float64 {
	dx := b.MaxX - b.MinX
	dy := b.MaxY - b.MinY
	dz := b.MaxZ - b.MinZ
	m := dx
	if dy > m {
		m = dy
	}
	if dz > m {
		m = dz
	}
	return m
}

func unionBounds(a, b Bounds) Bounds {
	u := Bounds{
		MinX: a.MinX, MaxX: a.MaxX,
		MinY: a.MinY, MaxY: a.MaxY,
		MinZ: a.MinZ, MaxZ: a.MaxZ,
	}
	if b.MinX < u.MinX {
		u.MinX = b.MinX
	}
	if b.MaxX > u.MaxX {
		u.MaxX = b.MaxX
	}
	if b.MinY < u.MinY {
		u.MinY = b.MinY
	}
	if b.MaxY > u.MaxY {
		u.MaxY = b.MaxY
	}
	if b.MinZ < u.MinZ {
		u.MinZ = b.MinZ
	}
	if b.MaxZ > u.MaxZ {
		u.MaxZ = b.MaxZ
	}
	return u
}

// aggregate holds the mass/geometry properties every node maintains,
// regardless of whether it is a leaf or an interior node.
type aggregate struct {
	com       Vec3
	totalMass float64
	rMax      float64
	bounds    Bounds
}

// CenterOfMass returns the mass-weighted mean position of every body under
// the node.
func (a aggregate) CenterOfMass() Vec3 { return a.com }

// TotalMass returns the sum of every body's mass under the node.
func (a aggregate) TotalMass() float64 { return a.totalMass }

// RMax returns the largest body radius under the node.
func (a aggregate) RMax() float64 { return a.rMax }

// MaxDistance returns the largest side of the node's bounding box.
func (a aggregate) MaxDistance() float64 { return a.bounds.MaxSide() }

// Node is a node of the spatial tree: either a *Leaf or an *Interior. The
// interface is closed to this package's two variants by the unexported
// isNode marker. A leaf has no child fields at all, and Build only produces
// interior nodes with both children set.
type Node interface {
	CenterOfMass() Vec3
	TotalMass() float64
	RMax() float64
	MaxDistance() float64
	isNode()
}

// Leaf holds bodies directly; it is terminal in the tree.
type Leaf struct {
	aggregate
	Bodies []Body
}

func (*Leaf) isNode() {}

// Interior is a non-terminal node: exactly two children plus the axis and
// coordinate it split its bodies on.
type Interior struct {
	aggregate
	Axis        Axis
	SplitValue  float64
	Left, Right Node
}

func (*Interior) isNode() {}

func newLeaf(bodies []Body) *Leaf {
	pts := append([]Body(nil), bodies...)

	var totalMass float64
	var com Vec3
	var rMax float64
	for _, b := range pts {
		totalMass += b.Mass
		com = com.Add(b.Pos.Scale(b.Mass))
		if b.Radius > rMax {
			rMax = b.Radius
		}
	}
	if totalMass > 0 {
		com = com.Scale(1 / totalMass)
	}

	xmin, xmax, ymin, ymax, zmin, zmax := Extents(pts)

	return &Leaf{
		aggregate: aggregate{
			com:       com,
			totalMass: totalMass,
			rMax:      rMax,
			bounds: Bounds{
				MinX: xmin, MaxX: xmax,
				MinY: ymin, MaxY: ymax,
				MinZ: zmin, MaxZ: zmax,
			},
		},
		Bodies: pts,
	}
}

func newInterior(axis Axis, splitValue float64, left, right Node) *Interior {
	totalMass := left.TotalMass() + right.TotalMass()

	var com Vec3
	if totalMass > 0 {
		com = left.CenterOfMass().Scale(left.TotalMass()).
			Add(right.CenterOfMass().Scale(right.TotalMass())).
			Scale(1 / totalMass)
	}

	rMax := left.RMax()
	if right.RMax() > rMax {
		rMax = right.RMax()
	}

	return &Interior{
		aggregate: aggregate{
			com:       com,
			totalMass: totalMass,
			rMax:      rMax,
			bounds:    unionBounds(boundsOf(left), boundsOf(right)),
		},
		Axis:       axis,
		SplitValue: splitValue,
		Left:       left,
		Right:      right,
	}
}

func boundsOf(n Node) Bounds {
	switch v := n.(type) {
	case *Leaf:
		return v.bounds
	case *Interior:
		return v.bounds
	default:
		return Bounds{}
	}
}
