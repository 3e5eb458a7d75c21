package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"k8s.io/utils/clock"

	sim "github.com/counter-sim/counter-sim/sim"
	"github.com/counter-sim/counter-sim/sim/trace"
)

var (
	// CLI flags for the institution
	seed            int64  // Seed for visitor generation
	totalMinutes    int    // Length of the simulated day (in minutes)
	counters        int    // Number of service counters
	initialVisitors int    // Draws made to seed the queues before opening
	openHour        int    // Wall-clock hour of minute 0
	lunchHour       int    // Hour during which arrivals and assignments pause
	arrivalInterval int    // Arrivals are drawn every N minutes
	maxArrivals     int    // Arrivals per draw are uniform in [0, N)
	configPath      string // Optional YAML config file
	logLevel        string // Log verbosity level
	traceLevel      string // Event trace level
	outputFormat    string // Report format
	quietArrivals   bool   // Skip per-arrival log lines

	// wallClock times each run; tests replace it with a fake.
	wallClock clock.PassiveClock = clock.RealClock{}
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "counter-sim",
	Short: "Minute-stepped queueing simulator for a service institution",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the institution simulation for one business day",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}
		if outputFormat != "text" && outputFormat != "yaml" {
			logrus.Fatalf("Invalid output format %q (want text or yaml)", outputFormat)
		}

		cfg, err := effectiveConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Starting simulation with %d counters, %d minutes from %02d:00, lunch hour %d, seed %d",
			cfg.Counters, cfg.TotalMinutes, cfg.OpenHour, cfg.LunchHour, cfg.Seed)

		opts := runOptions{
			TraceLevel:    trace.TraceLevel(traceLevel),
			Format:        outputFormat,
			QuietArrivals: quietArrivals,
		}
		if _, _, err := runSimulation(cfg, opts, cmd.OutOrStdout(), wallClock); err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Info("Simulation complete.")
	},
}

// configCmd prints the effective configuration without running anything.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := effectiveConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		out, err := marshalConfig(cfg)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
	},
}

// runOptions holds the presentation knobs that do not affect simulation results.
type runOptions struct {
	TraceLevel    trace.TraceLevel
	Format        string // "text" or "yaml"
	QuietArrivals bool
}

// runSimulation runs one day with cfg and writes the report to out.
// Returns the report and, when tracing is enabled, the trace summary.
func runSimulation(cfg sim.Config, opts runOptions, out io.Writer, clk clock.PassiveClock) (sim.Report, *trace.TraceSummary, error) {
	if err := cfg.Validate(); err != nil {
		return sim.Report{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	startTime := clk.Now()

	s := sim.NewSeededSimulator(cfg, sim.NewSimulationKey(cfg.Seed))
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: opts.TraceLevel})
	sinks := sim.MultiSink{sim.NewTraceSink(st)}
	if !opts.QuietArrivals {
		sinks = append(sinks, sim.NewLogSink())
	}
	s.Sink = sinks

	report := s.Run()

	switch opts.Format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(report); err != nil {
			return report, nil, fmt.Errorf("encoding report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return report, nil, fmt.Errorf("encoding report: %w", err)
		}
	default:
		report.Print(out)
	}

	var summary *trace.TraceSummary
	if st.Enabled() {
		summary = trace.Summarize(st)
		printTraceSummary(out, summary)
	}

	logrus.Infof("Simulation wall time: %s", clk.Since(startTime))
	return report, summary, nil
}

func printTraceSummary(w io.Writer, s *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Trace Summary ===")
	fmt.Fprintf(w, "Arrivals (electronic / offline) : %d (%d / %d)\n", s.TotalArrivals, s.ElectronicArrivals, s.OfflineArrivals)
	fmt.Fprintf(w, "Assignments / completions       : %d / %d\n", s.TotalAssignments, s.TotalCompletions)
	fmt.Fprintf(w, "Still in service at close       : %d\n", s.InService)
	fmt.Fprintf(w, "Busiest arrival minute          : %d (%d arrivals)\n", s.MaxArrivalsMinute, s.MaxArrivals)
	fmt.Fprintf(w, "Mean service minutes            : %.2f\n", s.MeanServiceMinutes)

	fmt.Fprintln(w, "Arrivals per category:")
	for _, c := range sim.Categories {
		fmt.Fprintf(w, "  %-8s: %d\n", c, s.CategoryArrivals[c.String()])
	}

	ids := make([]int, 0, len(s.CounterLoad))
	for id := range s.CounterLoad {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fmt.Fprintln(w, "Assignments per counter:")
	for _, id := range ids {
		fmt.Fprintf(w, "  counter %d: %d\n", id, s.CounterLoad[id])
	}
}

// effectiveConfig resolves defaults, config file and environment, then
// applies only the flags the user explicitly set so that a flag default
// never clobbers a value from the file or environment.
func effectiveConfig(cmd *cobra.Command) (sim.Config, error) {
	cfg, err := resolveConfig(configPath, nil)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("minutes") {
		cfg.TotalMinutes = totalMinutes
	}
	if flags.Changed("counters") {
		cfg.Counters = counters
	}
	if flags.Changed("initial-visitors") {
		cfg.InitialVisitors = initialVisitors
	}
	if flags.Changed("open-hour") {
		cfg.OpenHour = openHour
	}
	if flags.Changed("lunch-hour") {
		cfg.LunchHour = lunchHour
	}
	if flags.Changed("arrival-interval") {
		cfg.ArrivalInterval = arrivalInterval
	}
	if flags.Changed("max-arrivals") {
		cfg.MaxArrivals = maxArrivals
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerConfigFlags adds the institution flags shared by run and config.
func registerConfigFlags(cmd *cobra.Command) {
	defaults := sim.DefaultConfig()
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for visitor generation")
	cmd.Flags().IntVar(&totalMinutes, "minutes", defaults.TotalMinutes, "Length of the simulated day in minutes")
	cmd.Flags().IntVar(&counters, "counters", defaults.Counters, "Number of service counters")
	cmd.Flags().IntVar(&initialVisitors, "initial-visitors", defaults.InitialVisitors, "Generator draws used to seed the queues before opening")
	cmd.Flags().IntVar(&openHour, "open-hour", defaults.OpenHour, "Wall-clock hour of the first simulated minute")
	cmd.Flags().IntVar(&lunchHour, "lunch-hour", defaults.LunchHour, "Hour with no arrivals or new assignments (-1 disables lunch)")
	cmd.Flags().IntVar(&arrivalInterval, "arrival-interval", defaults.ArrivalInterval, "Draw arrivals every N minutes")
	cmd.Flags().IntVar(&maxArrivals, "max-arrivals", defaults.MaxArrivals, "Arrivals per draw are uniform in [0, N)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file (overridden by COUNTERSIM_* env vars and explicit flags)")
}

// init sets up CLI flags and subcommands
func init() {
	registerConfigFlags(runCmd)
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Event trace level (none, events)")
	runCmd.Flags().StringVar(&outputFormat, "format", "text", "Report format (text, yaml)")
	runCmd.Flags().BoolVar(&quietArrivals, "quiet-arrivals", false, "Do not log individual arrivals")

	registerConfigFlags(configCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}
