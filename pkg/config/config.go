// Package config loads simulation parameters from a YAML file, trying a
// wrapper struct first and falling back to the bare struct, for the physics
// parameters a gravitational step needs plus the run's ambient settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nbodysim/pkg/nbody"
)

// Config holds every parameter a simulation run needs: the physics
// parameters Build/Step consume, plus the ambient run parameters (worker
// count, step count, progress logging frequency, default I/O paths).
type Config struct {
	Theta   float64 `yaml:"theta"`
	MaxPts  int     `yaml:"max_pts"`
	Dt      float64 `yaml:"dt"`
	Workers int     `yaml:"workers"`
	Steps   int     `yaml:"steps"`
	LogFreq int     `yaml:"log_freq"`

	InputPath  string `yaml:"input_path"`
	OutputPath string `yaml:"output_path"`
}

// Params projects the physics-relevant fields of c down to an nbody.Params.
func (c *Config) Params() nbody.Params {
	return nbody.Params{Theta: c.Theta, MaxPts: c.MaxPts, Dt: c.Dt}
}

// LoadConfig loads a Config from a YAML file. It first tries a wrapper
// structure with a nested "simulation" key, falling back to parsing the
// file as a bare Config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var wrapper struct {
		Simulation Config `yaml:"simulation"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		var cfg Config
		if err2 := yaml.Unmarshal(data, &cfg); err2 != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		return &cfg, nil
	}

	zero := Config{}
	if wrapper.Simulation == zero {
		var cfg Config
		if err2 := yaml.Unmarshal(data, &cfg); err2 == nil && cfg != zero {
			return &cfg, nil
		}
	}

	return &wrapper.Simulation, nil
}

// DefaultConfig returns the reference parameters: theta=0.2, max_pts=3,
// dt=0.2, plus default run settings.
func DefaultConfig() *Config {
	return &Config{
		Theta:      0.2,
		MaxPts:     3,
		Dt:         0.2,
		Workers:    0,
		Steps:      100,
		LogFreq:    10,
		InputPath:  "bodies.txt",
		OutputPath: "bodies_out.txt",
	}
}
