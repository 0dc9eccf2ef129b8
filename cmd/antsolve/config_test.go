package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig_ClassicScenario(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 25, cfg.Graph.Nodes)
	assert.Equal(t, 0.7, cfg.Graph.EdgeProbability)
	assert.Equal(t, 3.0, cfg.Graph.MinWeight)
	assert.Equal(t, 5.0, cfg.Graph.MaxWeight)
	assert.Equal(t, 20, cfg.Solver.Ants)
	assert.Equal(t, 1.0, cfg.Solver.Alpha)
	assert.Equal(t, 2.0, cfg.Solver.Beta)
	assert.Equal(t, 0.5, cfg.Solver.Evaporation)
	assert.Equal(t, 100, cfg.Solver.Iterations)
}

func TestLoadConfig_OverridesOnlyListedFields(t *testing.T) {
	path := writeTempConfig(t, `
graph:
  nodes: 40
  euclidean: true
solver:
  iterations: 250
output:
  historyCsv: history.csv
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Listed fields take the file values.
	assert.Equal(t, 40, cfg.Graph.Nodes)
	assert.True(t, cfg.Graph.Euclidean)
	assert.Equal(t, 250, cfg.Solver.Iterations)
	assert.Equal(t, "history.csv", cfg.Output.HistoryCSV)

	// Unlisted fields keep the defaults.
	assert.Equal(t, 0.7, cfg.Graph.EdgeProbability)
	assert.Equal(t, 20, cfg.Solver.Ants)
	assert.Equal(t, 0.5, cfg.Solver.Evaporation)
	assert.Empty(t, cfg.Output.RouteJSON)
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	path := writeTempConfig(t, `
solver:
  antz: 12
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "antz")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
