// Package nbody implements a three-dimensional gravitational N-body core:
// bodies, a Barnes-Hut spatial partitioning tree, force evaluation with the
// opening-angle approximation, and a parallel step engine that advances a
// set of bodies by one semi-implicit Euler tick.
package nbody
