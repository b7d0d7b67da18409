// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvcohort/evaluate"
	"github.com/katalvlaran/lvcohort/internal/config"
	"github.com/katalvlaran/lvcohort/internal/export"
	"github.com/katalvlaran/lvcohort/internal/ingest"
	"github.com/katalvlaran/lvcohort/internal/telemetry"
	"github.com/katalvlaran/lvcohort/pipeline"
)

// ErrNoInput indicates neither --input nor input.path was given.
var ErrNoInput = errors.New("no input file: set --input or input.path")

// runFlags holds the raw flag values; only flags the user set override
// the configuration file.
type runFlags struct {
	configPath      string
	input           string
	out             string
	format          string
	clusters        int
	minSamples      int
	eps             float64
	excludeDiagonal bool
	activeOnly      bool
	metricsFile     string
	logLevel        string
	logFormat       string
}

func newRunCommand() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Aggregate, cluster and score cohorts from a CSV file",
		Long: `Reads stoppage records from --input, aggregates them into cohorts, runs
hierarchical clustering and DBSCAN, and prints the metric table.
With --out the feature table, distance matrix, linkage rows and a
JSON or YAML report are written to that directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	f.bind(cmd)

	return cmd
}

func (f *runFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fl.StringVarP(&f.input, "input", "i", "", "CSV file with stoppage records")
	fl.StringVarP(&f.out, "out", "o", "", "directory for exported artifacts")
	fl.StringVar(&f.format, "format", "json", "report format: json or yaml")
	fl.IntVarP(&f.clusters, "clusters", "k", 4, "number of hierarchical clusters")
	fl.IntVar(&f.minSamples, "min-samples", 5, "DBSCAN core point threshold")
	fl.Float64Var(&f.eps, "eps", 0, "DBSCAN radius, 0 included; unset uses the median distance")
	fl.BoolVar(&f.excludeDiagonal, "exclude-diagonal", false, "leave self-distances out of the median radius")
	fl.BoolVar(&f.activeOnly, "active-only", false, "aggregate only active stoppages")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	fl.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fl.StringVar(&f.logFormat, "log-format", "console", "log format: console or json")
}

// resolve loads the configuration file and applies the flags that were set.
func (f *runFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	fl := cmd.Flags()
	if fl.Changed("input") {
		cfg.Input.Path = f.input
	}
	if fl.Changed("out") {
		cfg.Output.Dir = f.out
	}
	if fl.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fl.Changed("clusters") {
		cfg.Pipeline.Clusters = f.clusters
	}
	if fl.Changed("min-samples") {
		cfg.Pipeline.MinSamples = f.minSamples
	}
	if fl.Changed("eps") {
		eps := f.eps
		cfg.Pipeline.Eps = &eps
	}
	if fl.Changed("exclude-diagonal") {
		cfg.Pipeline.IncludeDiagonal = !f.excludeDiagonal
	}
	if fl.Changed("active-only") {
		cfg.Pipeline.ActiveOnly = f.activeOnly
	}
	if fl.Changed("metrics-file") {
		cfg.Output.MetricsFile = f.metricsFile
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Input.Path == "" {
		return nil, ErrNoInput
	}

	return cfg, nil
}

func run(cmd *cobra.Command, cfg *config.Config) (err error) {
	logger, err := newLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	in, err := os.Open(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	data, err := ingest.ReadCSV(in, cfg.Schema())
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.Input.Path, err)
	}
	logger.Info("input read",
		zap.String("path", cfg.Input.Path),
		zap.Int("observations", len(data.Observations)),
		zap.Int("skipped_rows", data.Skipped))

	var metrics *telemetry.Metrics
	if cfg.Output.MetricsFile != "" {
		metrics = telemetry.New()
		metrics.CountObservations(telemetry.OutcomeSkipped, data.Skipped)
		defer func() {
			if werr := metrics.WriteTextfile(cfg.Output.MetricsFile); werr != nil && err == nil {
				err = werr
			}
		}()
	}

	rep, err := pipeline.New(cfg.Pipeline,
		pipeline.WithLogger(logger),
		pipeline.WithMetrics(metrics),
	).Run(cmd.Context(), data.Observations)
	if err != nil {
		return err
	}

	if cfg.Output.Dir != "" {
		paths, err := export.Write(cfg.Output.Dir, cfg.Output.Format, rep)
		if err != nil {
			return err
		}
		logger.Info("artifacts written", zap.Strings("paths", paths))
	}

	return printSummary(cmd.OutOrStdout(), rep)
}

// printSummary writes the cluster sizes and the metric table.
func printSummary(w io.Writer, rep *pipeline.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run\t%s\n", rep.RunID)
	fmt.Fprintf(tw, "cohorts\t%d\n\n", rep.Table.Len())

	fmt.Fprintln(tw, "ALGORITHM\tCLUSTERS\tSIZES\tNOISE")
	for _, a := range rep.Assignments {
		sizes, noise := a.Sizes()
		fmt.Fprintf(tw, "%s\t%d\t%v\t%d\n", a.Algorithm, len(sizes), sizes, noise)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "ALGORITHM\tSILHOUETTE\tDAVIES-BOULDIN\tCALINSKI-HARABASZ")
	for _, r := range rep.Metrics {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Algorithm, cell(r.Silhouette), cell(r.DaviesBouldin), cell(r.CalinskiHarabasz))
	}

	return tw.Flush()
}

func cell(s evaluate.Score) string {
	v, ok := s.Value()
	if !ok {
		return s.String()
	}

	return fmt.Sprintf("%.4f", v)
}
