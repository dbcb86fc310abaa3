package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmaxen/fpgrow/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	minSupport int     // absolute support threshold
	minRatio   float64 // relative support threshold
	formatsStr string  // comma-separated output formats
	output     string  // output file path (or base path for multiple outputs)
	counts     bool    // annotate nodes with support counts
	title      string  // graph title for DOT/SVG/PNG output
	noCache    bool    // disable caching
	refresh    bool    // bypass cache
}

// renderCommand creates the render command for visualizing FP-trees.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{minSupport: pipeline.DefaultMinSupport, counts: true}

	cmd := &cobra.Command{
		Use:   "render [dataset]",
		Short: "Render the FP-tree of a transaction database",
		Long: `Render the FP-tree of a transaction database.

The render command builds the FP-tree for the dataset at the given support
threshold and draws it. The tree shows how baskets share prefixes after
items are reordered by frequency; heavily shared paths indicate strong
co-occurrence.

Formats: dot (Graphviz source), svg, png, text (ASCII tree).

Examples:
  fpgrow render baskets.csv -f text
  fpgrow render baskets.csv -f svg -o tree.svg
  fpgrow render baskets.csv -f dot,svg --min-support 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.minSupport, "min-support", "s", opts.minSupport, "minimum support as an absolute transaction count")
	cmd.Flags().Float64VarP(&opts.minRatio, "min-ratio", "r", 0, "minimum support as a fraction of transactions")
	cmd.Flags().StringVarP(&opts.formatsStr, "format", "f", "", "output format(s): svg (default), dot, png, text (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&opts.counts, "counts", opts.counts, "annotate tree nodes with support counts")
	cmd.Flags().StringVar(&opts.title, "title", "", "graph title for dot/svg/png output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")

	return cmd
}

// runRender builds the FP-tree and writes the requested renderings.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	formats := parseFormats(opts.formatsStr, pipeline.FormatSVG)
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}
	for _, f := range formats {
		switch f {
		case pipeline.FormatDOT, pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatText:
		default:
			return fmt.Errorf("format %q is not a tree rendering (use 'mine' for pattern exports)", f)
		}
	}

	runner, err := c.newRunner(ctx, opts.noCache, "")
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Input:      input,
		MinSupport: opts.minSupport,
		MinRatio:   opts.minRatio,
		Formats:    formats,
		Counts:     opts.counts,
		Title:      opts.title,
		Refresh:    opts.refresh,
		Logger:     c.Logger,
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	printSuccess("Rendered %s", StyleHighlight.Render(result.DatasetName))
	printStats(result.Stats.TransactionCount, result.Stats.PatternCount, result.CacheInfo.RenderHit)

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   formats,
		input:     input,
		output:    opts.output,
	})
}
