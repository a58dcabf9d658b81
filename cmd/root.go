package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/circuit-sim/sim"
	"github.com/inference-sim/circuit-sim/sim/trace"
)

var (
	scenarioPath string // Path to the scenario YAML file
	numSteps     int    // Steps to run; overrides the scenario when > 0
	logLevel     string // Log verbosity level
	traceLevel   string // Trace verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "circuit-sim",
	Short: "Current-propagation simulator for idealized circuits",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd steps a scenario and prints the per-step report
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a circuit scenario",
	Run: func(cmd *cobra.Command, args []string) {
		sc, err := LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("unable to load scenario: %v", err)
		}
		steps := sc.Steps
		if numSteps > 0 {
			steps = numSteps
		}
		if err := runScenario(cmd.OutOrStdout(), sc, steps, traceLevel); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// pathsCmd prints the connectivity graph discovered from the scenario's sources
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the source-to-ground connectivity graph",
	Run: func(cmd *cobra.Command, args []string) {
		sc, err := LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("unable to load scenario: %v", err)
		}
		if err := writePaths(cmd.OutOrStdout(), sc); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// runScenario builds the circuit, runs it for the given number of steps
// applying scheduled presses before each step, and writes the report.
// At trace level "none" no steps are recorded, so only the summary line prints.
func runScenario(w io.Writer, sc *Scenario, steps int, level string) error {
	c, err := sc.Build()
	if err != nil {
		return err
	}
	s := sim.NewSimulator(c, sim.NewRunConfig(level))
	if err := s.Start(); err != nil {
		return err
	}
	logrus.Infof("Running scenario %q for %d step(s)", sc.Name, steps)
	for step := 1; step <= steps; step++ {
		for _, p := range sc.pressesBefore(step) {
			if err := c.Press(p.Component, p.Pressed); err != nil {
				return err
			}
		}
		s.Step()
	}
	if err := s.Stop(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "scenario: %s\n", sc.Name); err != nil {
		return err
	}
	return trace.WriteReport(w, s.Trace)
}

// writePaths prints one "from -> to" line per edge, ordered by pin.
func writePaths(w io.Writer, sc *Scenario) error {
	c, err := sc.Build()
	if err != nil {
		return err
	}
	g, err := c.FindPathsFromSources()
	if err != nil {
		return fmt.Errorf("could not run: %w", err)
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "%d -> %d\n", e.From, e.To); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&scenarioPath, "scenario", "", "Path to the scenario YAML file")
	_ = rootCmd.MarkPersistentFlagRequired("scenario")

	runCmd.Flags().IntVar(&numSteps, "steps", 0, "Number of propagation steps (0 = use the scenario's steps)")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelSteps), "Trace level (none, steps)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(pathsCmd)
}
