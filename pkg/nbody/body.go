package nbody

import "strconv"

// Body is a point mass: kinematic state plus physical attributes. Bodies are
// value types — ApplyGravityFrom never mutates its receiver, it returns a new
// Body. Opening angle and time step are not carried here; they live on Params,
// carried once by the Tree (see Params).
type Body struct {
	Pos    Vec3
	Vel    Vec3
	Mass   float64
	Radius float64
}

// ApplyGravityFrom advances b by one time step under the gravitational field
// of tree, using semi-implicit (symplectic) Euler integration: velocity is
// updated first, then position is advanced using the new velocity.
func (b Body) ApplyGravityFrom(tree *Tree) Body {
	acc := Acceleration(b, tree)
	dt := tree.Params.Dt

	newVel := b.Vel.Add(acc.Scale(dt))
	newPos := b.Pos.Add(newVel.Scale(dt))

	return Body{
		Pos:    newPos,
		Vel:    newVel,
		Mass:   b.Mass,
		Radius: b.Radius,
	}
}

// AsText renders b as "x y z vx vy vz mass radius", single-space separated,
// using the shortest round-trippable decimal representation of each field.
func (b Body) AsText() string {
	fields := [8]float64{
		b.Pos.X, b.Pos.Y, b.Pos.Z,
		b.Vel.X, b.Vel.Y, b.Vel.Z,
		b.Mass, b.Radius,
	}
	out := make([]byte, 0, 96)
	for i, f := range fields {
		if i > 0 {
			out = append(out, ' ')
		}
		out = strconv.AppendFloat(out, f, 'g', -1, 64)
	}
	return string(out)
}
