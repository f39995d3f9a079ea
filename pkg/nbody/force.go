package nbody

import "math"

// Acceleration computes the gravitational acceleration on b from every body
// in tree, applying the Barnes-Hut opening criterion to approximate distant
// clusters as a single point mass.
func Acceleration(b Body, tree *Tree) Vec3 {
	return accelerationFromNode(b, tree.Root, tree.Params.Theta)
}

func accelerationFromNode(b Body, n Node, theta float64) Vec3 {
	switch node := n.(type) {
	case *Leaf:
		var acc Vec3
		for _, other := range node.Bodies {
			acc = acc.Add(gravityFrom(b.Pos, other.Pos, other.Mass))
		}
		return acc
	case *Interior:
		if thetaExceeded(b, node, theta) {
			return gravityFrom(b.Pos, node.CenterOfMass(), node.TotalMass())
		}
		left := accelerationFromNode(b, node.Left, theta)
		right := accelerationFromNode(b, node.Right, theta)
		return left.Add(right)
	default:
		return Vec3{}
	}
}

// thetaExceeded reports whether node is far enough from b, relative to its
// own size, that it may be approximated as a single point mass:
// |b - com|^2 * theta^2 > maxDistance^2.
func thetaExceeded(b Body, n Node, theta float64) bool {
	delta := n.CenterOfMass().Sub(b.Pos)
	distSq := delta.Dot(delta)
	maxDist := n.MaxDistance()
	return distSq*theta*theta > maxDist*maxDist
}

// gravityFrom returns the gravitational acceleration contributed at selfPos
// by a point mass otherMass located at otherPos: m*(r)/|r|^3, where r is the
// signed displacement from selfPos to otherPos. Coincident positions
// (including a body's own position, encountered when a leaf iterates all of
// its members) contribute nothing rather than dividing by zero — the single,
// uniformly applied policy for the degenerate case.
func gravityFrom(selfPos, otherPos Vec3, otherMass float64) Vec3 {
	delta := otherPos.Sub(selfPos)
	distSq := delta.Dot(delta)
	if distSq == 0 {
		return Vec3{}
	}
	dist := math.Sqrt(distSq)
	return delta.Scale(otherMass / (distSq * dist))
}
