// Command nbodysim drives a fixed number of simulation steps over a body
// file, reporting progress as it goes.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"nbodysim/pkg/bodyio"
	"nbodysim/pkg/config"
	"nbodysim/pkg/nbody"
)

func main() {
	inputPath := flag.String("input", "", "Path to the input body file (required)")
	outputPath := flag.String("output", "", "Path to write the final body file (required)")
	configPath := flag.String("config", "", "Path to a simulation config YAML file (optional, uses defaults if not provided)")
	theta := flag.Float64("theta", 0, "Opening-angle threshold (overrides config when > 0)")
	maxPts := flag.Int("max-pts", 0, "Leaf capacity (overrides config when > 0)")
	dt := flag.Float64("dt", 0, "Time step (overrides config when > 0)")
	steps := flag.Int("steps", 0, "Number of simulation steps (overrides config when > 0)")
	workers := flag.Int("workers", -1, "Worker count for the parallel step (overrides config when >= 0)")

	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "nbodysim: -input and -output are required")
		os.Exit(2)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "nbodysim: loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *theta > 0 {
		cfg.Theta = *theta
	}
	if *maxPts > 0 {
		cfg.MaxPts = *maxPts
	}
	if *dt > 0 {
		cfg.Dt = *dt
	}
	if *steps > 0 {
		cfg.Steps = *steps
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}

	bodies, err := bodyio.ReadFile(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nbodysim: reading %q: %v\n", *inputPath, err)
		os.Exit(1)
	}

	fmt.Printf("nbodysim: %d bodies, theta=%v max-pts=%d dt=%v steps=%d\n",
		len(bodies), cfg.Theta, cfg.MaxPts, cfg.Dt, cfg.Steps)

	start := time.Now()
	tree := nbody.Build(bodies, cfg.Params())
	for step := 1; step <= cfg.Steps; step++ {
		tree = nbody.Step(tree, cfg.Workers)
		if cfg.LogFreq > 0 && step%cfg.LogFreq == 0 {
			fmt.Printf("nbodysim: step %d/%d (%s elapsed)\n", step, cfg.Steps, time.Since(start).Round(time.Millisecond))
		}
	}

	if err := bodyio.WriteFile(*outputPath, nbody.BodiesOf(tree)); err != nil {
		fmt.Fprintf(os.Stderr, "nbodysim: writing %q: %v\n", *outputPath, err)
		os.Exit(1)
	}

	fmt.Printf("nbodysim: wrote %d bodies to %q in %s\n", tree.Count, *outputPath, time.Since(start).Round(time.Millisecond))
}
