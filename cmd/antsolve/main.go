// Command antsolve generates a routing scenario, runs the ant colony
// solver on it, and reports the best route found together with the
// per-iteration convergence history.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/swarmpath/antcolony/aco"
	"github.com/swarmpath/antcolony/builder"
	"github.com/swarmpath/antcolony/graph"
)

var (
	cfgPath string
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "antsolve",
	Short: "Ant colony optimization route solver",
	Long: `antsolve searches for low-cost routes over weighted directed graphs
using an ant colony metaheuristic: a pheromone field decayed and
reinforced by stochastic tours, with an elite archive of the best
candidates seen across all iterations.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate a random scenario and search it for a low-cost route",
	Long: `Generates a random directed weighted graph (or the scenario described
by --config), runs the solver, and prints the best route and distance.
Convergence history and the route layout can be written out for
external plotting.`,
	RunE: runSolve,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(runCmd)

	f := runCmd.Flags()
	f.StringVarP(&cfgPath, "config", "c", "", "YAML run configuration file")
	f.Int("nodes", 25, "node count of the generated graph")
	f.Float64("edge-prob", 0.7, "edge inclusion probability per ordered pair")
	f.Float64("weight-min", 3, "minimum uniform edge weight")
	f.Float64("weight-max", 5, "maximum uniform edge weight")
	f.Bool("euclidean", false, "use layout distances as edge weights")
	f.Int64("graph-seed", 0, "scenario generation seed (0 = fixed default)")
	f.Int("ants", 20, "ants per iteration (elite archive capacity)")
	f.Float64("alpha", 1, "pheromone exponent")
	f.Float64("beta", 2, "inverse-distance heuristic exponent")
	f.Float64("evaporation", 0.5, "pheromone decay factor per ant, in (0,1]")
	f.Int("iterations", 100, "solver iterations")
	f.Int64("seed", 0, "solver RNG seed (0 = fixed default)")
	f.Int("initial-routes", 0, "number of random routes to pre-seed with")
	f.String("history", "", "write convergence history CSV to this path")
	f.String("route-out", "", "write best route + layout JSON to this path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// 1) Scenario.
	g, layout, err := buildScenario(cfg.Graph)
	if err != nil {
		return err
	}
	logger.Info("scenario generated",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Float64("edgeProbability", cfg.Graph.EdgeProbability))

	// 2) Solver options.
	opts := []aco.Option{
		aco.WithAntCount(cfg.Solver.Ants),
		aco.WithAlpha(cfg.Solver.Alpha),
		aco.WithBeta(cfg.Solver.Beta),
		aco.WithEvaporation(cfg.Solver.Evaporation),
		aco.WithSeed(cfg.Solver.Seed),
		aco.WithObserver(progressObserver()),
	}
	if cfg.Solver.InitialRoutes > 0 {
		rng := rand.New(rand.NewSource(cfg.Solver.Seed + 1))
		routes := make([]aco.Route, 0, cfg.Solver.InitialRoutes)
		for i := 0; i < cfg.Solver.InitialRoutes; i++ {
			r, rerr := builder.RandomRoute(g, rng)
			if rerr != nil {
				return rerr
			}
			routes = append(routes, aco.Route(r))
		}
		opts = append(opts, aco.WithInitialRoutes(routes...))
		logger.Debug("archive pre-seeded", zap.Int("routes", len(routes)))
	}

	// 3) Run.
	res, err := aco.Solve(g, cfg.Solver.Iterations, opts...)
	if err != nil {
		return fmt.Errorf("solver: %w", err)
	}
	logger.Info("search finished",
		zap.Float64("distance", res.Distance),
		zap.Int("routeLen", len(res.Route)),
		zap.Int("iterations", cfg.Solver.Iterations))

	// 4) Report.
	fmt.Printf("best distance: %g\n", res.Distance)
	fmt.Printf("best route:    %s\n", strings.Join(res.Route, " → "))

	if cfg.Output.HistoryCSV != "" {
		if err := writeHistoryCSV(cfg.Output.HistoryCSV, res.History); err != nil {
			return err
		}
		logger.Info("history written", zap.String("path", cfg.Output.HistoryCSV))
	}
	if cfg.Output.RouteJSON != "" {
		if err := writeRouteJSON(cfg.Output.RouteJSON, res.Route, res.Distance, layout); err != nil {
			return err
		}
		logger.Info("route written", zap.String("path", cfg.Output.RouteJSON))
	}

	return nil
}

// resolveConfig layers defaults ← config file ← explicitly set flags.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if cfgPath != "" {
		var err error
		cfg, err = LoadConfig(cfgPath)
		if err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if f.Changed("nodes") {
		cfg.Graph.Nodes, _ = f.GetInt("nodes")
	}
	if f.Changed("edge-prob") {
		cfg.Graph.EdgeProbability, _ = f.GetFloat64("edge-prob")
	}
	if f.Changed("weight-min") {
		cfg.Graph.MinWeight, _ = f.GetFloat64("weight-min")
	}
	if f.Changed("weight-max") {
		cfg.Graph.MaxWeight, _ = f.GetFloat64("weight-max")
	}
	if f.Changed("euclidean") {
		cfg.Graph.Euclidean, _ = f.GetBool("euclidean")
	}
	if f.Changed("graph-seed") {
		cfg.Graph.Seed, _ = f.GetInt64("graph-seed")
	}
	if f.Changed("ants") {
		cfg.Solver.Ants, _ = f.GetInt("ants")
	}
	if f.Changed("alpha") {
		cfg.Solver.Alpha, _ = f.GetFloat64("alpha")
	}
	if f.Changed("beta") {
		cfg.Solver.Beta, _ = f.GetFloat64("beta")
	}
	if f.Changed("evaporation") {
		cfg.Solver.Evaporation, _ = f.GetFloat64("evaporation")
	}
	if f.Changed("iterations") {
		cfg.Solver.Iterations, _ = f.GetInt("iterations")
	}
	if f.Changed("seed") {
		cfg.Solver.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("initial-routes") {
		cfg.Solver.InitialRoutes, _ = f.GetInt("initial-routes")
	}
	if f.Changed("history") {
		cfg.Output.HistoryCSV, _ = f.GetString("history")
	}
	if f.Changed("route-out") {
		cfg.Output.RouteJSON, _ = f.GetString("route-out")
	}

	return cfg, nil
}

// buildScenario translates GraphConfig into builder options.
func buildScenario(gc GraphConfig) (*graph.Graph, builder.Layout, error) {
	opts := []builder.Option{
		builder.WithEdgeProbability(gc.EdgeProbability),
		builder.WithSeed(gc.Seed),
	}
	if gc.Euclidean {
		opts = append(opts, builder.WithEuclideanWeights())
	} else {
		opts = append(opts, builder.WithWeightRange(gc.MinWeight, gc.MaxWeight))
	}

	return builder.Random(gc.Nodes, opts...)
}

// progressObserver logs every iteration at debug level and improvements
// at info level.
func progressObserver() aco.Observer {
	best := math.Inf(1)

	return func(iteration int, route aco.Route, distance float64, total int) {
		logger.Debug("iteration finished",
			zap.Int("iteration", iteration),
			zap.Int("total", total),
			zap.Float64("best", distance))
		if distance < best {
			best = distance
			logger.Info("best route improved",
				zap.Int("iteration", iteration),
				zap.Float64("distance", distance),
				zap.Int("routeLen", len(route)))
		}
	}
}
