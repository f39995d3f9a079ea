package nbody

import (
	"runtime"
	"sync"
)

// Step advances tree by one tick: every body's post-gravity state is computed
// independently (there are no inter-body dependencies within a step), using a
// pool of workers pulling body indices off a shared job channel — the same
// jobs-channel-plus-WaitGroup shape a parallel solver sweep uses elsewhere in
// this codebase's history, simplified here because each worker writes its
// result directly into a disjoint output slot instead of funneling through a
// results channel. workers <= 0 sizes the pool to runtime.NumCPU(); the
// result does not depend on the worker count.
func Step(tree *Tree, workers int) *Tree {
	bodies := BodiesOf(tree)
	next := parallelMap(bodies, workers, func(b Body) Body {
		return b.ApplyGravityFrom(tree)
	})
	return Build(next, tree.Params)
}

func parallelMap(bodies []Body, workers int, fn func(Body) Body) []Body {
	n := len(bodies)
	out := make([]Body, n)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	jobs := make(chan int, n)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Go(func() {
			for i := range jobs {
				out[i] = fn(bodies[i])
			}
		})
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return out
}
