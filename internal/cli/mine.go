package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmaxen/fpgrow/pkg/dataset"
	"github.com/tmaxen/fpgrow/pkg/pipeline"
	"github.com/tmaxen/fpgrow/pkg/report"
)

// mineOpts holds the command-line flags for the mine command.
type mineOpts struct {
	minSupport int     // absolute support threshold
	minRatio   float64 // relative support threshold, overrides minSupport
	formatsStr string  // comma-separated output formats
	output     string  // output file path (stdout if empty)
	top        int     // number of top patterns to print
	noCache    bool    // disable caching
	refresh    bool    // bypass cache
	redisAddr  string  // Redis cache address

	// MongoDB source flags. When mongoURI is set the dataset argument is
	// interpreted as "database/collection" instead of a file path.
	mongoURI string
}

// mineCommand creates the mine command for extracting frequent itemsets.
func (c *CLI) mineCommand() *cobra.Command {
	opts := mineOpts{minSupport: pipeline.DefaultMinSupport, top: 10}

	cmd := &cobra.Command{
		Use:   "mine [dataset]",
		Short: "Mine frequent itemsets from a transaction database",
		Long: `Mine frequent itemsets from a transaction database.

The dataset argument is a file path (.csv, .json, or .toml) or, with
--mongo-uri, a "database/collection" reference. The support threshold can be
absolute (--min-support) or a fraction of the transaction count
(--min-ratio).

Results are cached locally for faster subsequent runs.

Examples:
  fpgrow mine baskets.csv
  fpgrow mine baskets.csv --min-support 5 -f json -o patterns.json
  fpgrow mine baskets.json --min-ratio 0.1 -f csv
  fpgrow mine retail/baskets --mongo-uri mongodb://localhost:27017`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMine(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.minSupport, "min-support", "s", opts.minSupport, "minimum support as an absolute transaction count")
	cmd.Flags().Float64VarP(&opts.minRatio, "min-ratio", "r", 0, "minimum support as a fraction of transactions (overrides --min-support)")
	cmd.Flags().StringVarP(&opts.formatsStr, "format", "f", "", "output format(s): json (default), csv (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().IntVar(&opts.top, "top", opts.top, "number of top patterns to print")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for caching (host:port)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB connection URI; dataset becomes database/collection")

	return cmd
}

// runMine executes the mining pipeline and writes the requested outputs.
func (c *CLI) runMine(ctx context.Context, input string, opts *mineOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache, opts.redisAddr)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Input:      input,
		MinSupport: opts.minSupport,
		MinRatio:   opts.minRatio,
		Formats:    parseFormats(opts.formatsStr, pipeline.FormatJSON),
		Refresh:    opts.refresh,
		Logger:     c.Logger,
	}
	if err := pipeline.ValidateFormats(pipeOpts.Formats); err != nil {
		return err
	}

	if opts.mongoURI != "" {
		return c.mineMongo(ctx, runner, input, opts, pipeOpts)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Mining %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		spinner.StopWithError("Mining failed")
		return fmt.Errorf("mine: %w", err)
	}
	spinner.Stop()

	printSuccess("Mined %s", StyleHighlight.Render(result.DatasetName))
	printStats(result.Stats.TransactionCount, result.Stats.PatternCount, result.CacheInfo.MineHit)
	printTopPatterns(result.Summary, opts.top)

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   pipeOpts.Formats,
		input:     input,
		output:    opts.output,
	})
}

// mineMongo loads the dataset from MongoDB and runs the mine and render
// stages. The input is a "database/collection" reference.
func (c *CLI) mineMongo(ctx context.Context, runner *pipeline.Runner, input string, opts *mineOpts, pipeOpts pipeline.Options) error {
	db, coll, ok := strings.Cut(input, "/")
	if !ok {
		return fmt.Errorf("mongo dataset must be database/collection, got %q", input)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Loading %s from MongoDB...", input))
	spinner.Start()

	src, err := dataset.NewMongoSource(ctx, opts.mongoURI, db, coll)
	if err != nil {
		spinner.StopWithError("Connection failed")
		return fmt.Errorf("connect mongodb: %w", err)
	}
	defer src.Close(ctx)

	ds, err := src.Load(ctx)
	if err != nil {
		spinner.StopWithError("Load failed")
		return fmt.Errorf("load collection: %w", err)
	}
	spinner.Stop()

	prog := newProgress(c.Logger)
	patterns, hit, err := runner.MineWithCacheInfo(ctx, ds, pipeOpts)
	if err != nil {
		return fmt.Errorf("mine: %w", err)
	}
	prog.done(fmt.Sprintf("Mined %d patterns from %d transactions", len(patterns), len(ds.Transactions)))

	minSupport := pipeOpts.EffectiveMinSupport(len(ds.Transactions))
	summary := report.Build(ds.Name, ds.Transactions, minSupport, patterns)

	printSuccess("Mined %s", StyleHighlight.Render(ds.Name))
	printStats(len(ds.Transactions), len(patterns), hit)
	printTopPatterns(summary, opts.top)

	artifacts, err := runner.Render(ctx, ds, patterns, summary, pipeOpts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   pipeOpts.Formats,
		input:     coll,
		output:    opts.output,
	})
}

// printTopPatterns prints the highest-support patterns from a summary.
func printTopPatterns(summary report.Summary, top int) {
	if top <= 0 || len(summary.Top) == 0 {
		return
	}
	printNewline()
	printDetail("Top patterns:")

	patterns := summary.Top
	if len(patterns) > top {
		patterns = patterns[:top]
	}
	for _, p := range patterns {
		items := make([]string, len(p.Items))
		copy(items, p.Items)
		sort.Strings(items)
		printDetail("%s  %s (%.1f%%)",
			StyleValue.Render(strings.Join(items, " + ")),
			StyleNumber.Render(fmt.Sprintf("%d", p.Support)),
			summary.SupportPercent(p))
	}
}
