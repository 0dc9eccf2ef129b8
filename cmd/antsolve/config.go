package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML run configuration. Flags override file values,
// file values override defaults.
type Config struct {
	Graph  GraphConfig  `yaml:"graph"`
	Solver SolverConfig `yaml:"solver"`
	Output OutputConfig `yaml:"output"`
}

// GraphConfig describes the generated scenario.
type GraphConfig struct {
	// Nodes is the node count of the random graph.
	Nodes int `yaml:"nodes"`

	// EdgeProbability is the independent inclusion probability per
	// ordered node pair, in [0,1].
	EdgeProbability float64 `yaml:"edgeProbability"`

	// MinWeight/MaxWeight bound the uniform edge-weight draw; ignored
	// when Euclidean is true.
	MinWeight float64 `yaml:"minWeight"`
	MaxWeight float64 `yaml:"maxWeight"`

	// Euclidean derives edge weights from the 2-D layout distance.
	Euclidean bool `yaml:"euclidean"`

	// Seed drives scenario generation; 0 keeps the fixed default stream.
	Seed int64 `yaml:"seed"`
}

// SolverConfig carries the solver knobs (see package aco for semantics).
type SolverConfig struct {
	Ants        int     `yaml:"ants"`
	Alpha       float64 `yaml:"alpha"`
	Beta        float64 `yaml:"beta"`
	Evaporation float64 `yaml:"evaporation"`
	Iterations  int     `yaml:"iterations"`
	Seed        int64   `yaml:"seed"`

	// InitialRoutes is the number of random routes to pre-seed the
	// archive and pheromone field with.
	InitialRoutes int `yaml:"initialRoutes"`
}

// OutputConfig selects optional artifacts for external collaborators.
type OutputConfig struct {
	// HistoryCSV, when set, receives the per-iteration convergence
	// history as CSV (iteration,best,mean).
	HistoryCSV string `yaml:"historyCsv"`

	// RouteJSON, when set, receives the best route, its distance, and
	// the 2-D layout as JSON for plotting.
	RouteJSON string `yaml:"routeJson"`
}

// DefaultConfig mirrors the classic 25-node scenario and the solver's
// own option defaults.
func DefaultConfig() Config {
	return Config{
		Graph: GraphConfig{
			Nodes:           25,
			EdgeProbability: 0.7,
			MinWeight:       3,
			MaxWeight:       5,
		},
		Solver: SolverConfig{
			Ants:        20,
			Alpha:       1,
			Beta:        2,
			Evaporation: 0.5,
			Iterations:  100,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. Unknown keys are
// rejected so typos fail loudly instead of silently running defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
