// Package viz provides a read-only spatial query and 2-D projection surface
// over a body set, intended for third-party visualization consumers of the
// body text format (SPEC_FULL.md §6, §10.4). It never performs collision
// detection or response — only range queries and bounding-box accumulation.
package viz

import (
	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"

	"nbodysim/pkg/nbody"
)

// Snapshot is a broad-phase spatial index over a fixed set of bodies,
// projected onto the XY plane.
type Snapshot struct {
	index  rtree.RTree
	bodies []nbody.Body
}

// NewSnapshot indexes bodies by their XY bounding square (position ± radius).
func NewSnapshot(bodies []nbody.Body) *Snapshot {
	s := &Snapshot{
		index:  rtree.RTree{},
		bodies: append([]nbody.Body(nil), bodies...),
	}
	for i, b := range s.bodies {
		min := [2]float64{b.Pos.X - b.Radius, b.Pos.Y - b.Radius}
		max := [2]float64{b.Pos.X + b.Radius, b.Pos.Y + b.Radius}
		s.index.Insert(min, max, i)
	}
	return s
}

// BodiesInRegion returns every body whose XY bounding square intersects the
// axis-aligned rectangle [min, max].
func (s *Snapshot) BodiesInRegion(min, max orb.Point) []nbody.Body {
	var hits []nbody.Body
	s.index.Search(
		[2]float64{min[0], min[1]},
		[2]float64{max[0], max[1]},
		func(_, _ [2]float64, data interface{}) bool {
			hits = append(hits, s.bodies[data.(int)])
			return true
		},
	)
	return hits
}

// Bounds returns the overall XY bounding box of every body in the snapshot.
func (s *Snapshot) Bounds() orb.Bound {
	if len(s.bodies) == 0 {
		return orb.Bound{}
	}
	b := s.bodies[0]
	bound := orb.Bound{
		Min: orb.Point{b.Pos.X - b.Radius, b.Pos.Y - b.Radius},
		Max: orb.Point{b.Pos.X + b.Radius, b.Pos.Y + b.Radius},
	}
	for _, b := range s.bodies[1:] {
		bound = bound.Union(orb.Bound{
			Min: orb.Point{b.Pos.X - b.Radius, b.Pos.Y - b.Radius},
			Max: orb.Point{b.Pos.X + b.Radius, b.Pos.Y + b.Radius},
		})
	}
	return bound
}
