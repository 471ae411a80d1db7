package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/circuits/cluster"
	"github.com/katalvlaran/circuits/edge"
	"github.com/katalvlaran/circuits/point"
	"github.com/katalvlaran/circuits/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultInput = "input/8.txt"

type options struct {
	connections int
	top         int
	verbose     bool
}

func newRootCmd(version string) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "circuits [input]",
		Short: "connect junction boxes into circuits, shortest wire first",
		Long: `
circuits reads one junction box per line as "x,y,z", joins the closest pairs
first and reports:

  #1  the product of the largest circuit sizes after --connections pairs
  #2  the product of the X coordinates of the pair that completes a single
      circuit spanning every box
`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultInput
			if len(args) == 1 {
				path = args[0]
			}

			return run(cmd, path, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.connections, "connections", "k", 1000, "number of closest pairs to connect for part one (10 for the sample)")
	cmd.Flags().IntVar(&opts.top, "top", 3, "number of largest circuits to multiply for part one")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log clustering progress to stderr")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}

func run(cmd *cobra.Command, path string, opts *options) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	timer := report.NewTimer()

	points, err := point.Parse(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	logger.Info("input loaded",
		zap.String("file", path),
		zap.String("points", humanize.Comma(int64(len(points)))),
		zap.String("pairs", humanize.Comma(int64(edge.Count(len(points))))))

	one, err := partOne(points, opts, logger)
	if err != nil {
		return err
	}

	timer.Split()

	two, err := partTwo(points, logger)
	if err != nil {
		return err
	}

	return timer.Write(cmd.OutOrStdout(), one, two)
}

// partOne multiplies the sizes of the opts.top largest circuits after
// opts.connections pairs have been joined.
func partOne(points []point.Point, opts *options, logger *zap.Logger) (int, error) {
	if opts.connections > edge.Count(len(points)) {
		logger.Warn("fewer pairs than connections requested, using all pairs",
			zap.Int("connections", opts.connections),
			zap.String("pairs", humanize.Comma(int64(edge.Count(len(points))))))
	}
	sizes, err := cluster.SizesAfter(points, opts.connections, cluster.WithLogger(logger))
	if err != nil {
		return 0, fmt.Errorf("part one: %w", err)
	}
	product, err := cluster.ProductOfLargest(sizes, opts.top)
	if err != nil {
		return 0, fmt.Errorf("part one: %w", err)
	}

	return product, nil
}

// partTwo multiplies the X coordinates of the pair that completes a single
// circuit.
func partTwo(points []point.Point, logger *zap.Logger) (int, error) {
	e, err := cluster.ConvergenceEdge(points, cluster.WithLogger(logger))
	if err != nil {
		return 0, fmt.Errorf("part two: %w", err)
	}

	return e.A.X * e.B.X, nil
}
