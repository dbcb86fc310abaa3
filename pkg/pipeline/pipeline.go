// Package pipeline provides the core mining pipeline for fpgrow.
//
// This package implements the complete load → mine → render pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the transaction database from a file or external source
//  2. Mine: Extract frequent itemsets with the FP-Growth algorithm
//  3. Render: Generate output in various formats (JSON, CSV, DOT, SVG, PNG, text)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:      "baskets.csv",
//	    MinSupport: 3,
//	    Formats:    []string{"json", "svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	ds, err := runner.Load(ctx, opts)
//
//	// Mine an already-loaded dataset
//	patterns, err := runner.Mine(ctx, ds, opts)
//
//	// Render with existing patterns
//	artifacts, err := runner.Render(ctx, ds, patterns, opts)
package pipeline

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tmaxen/fpgrow/pkg/cache"
	"github.com/tmaxen/fpgrow/pkg/fptree"
	"github.com/tmaxen/fpgrow/pkg/report"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMinSupport is the absolute support threshold used when neither
	// MinSupport nor MinRatio is set. Two is the lowest value that still
	// filters out items appearing in a single basket.
	DefaultMinSupport = 2

	// MaxTransactions caps the number of baskets accepted per run. The
	// miner itself has no hard limit; the cap keeps API payloads and CLI
	// mistakes (mining a log file, say) from exhausting memory.
	MaxTransactions = 1_000_000
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatText = "text"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatCSV:  true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatText: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the mining pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Input   string `json:"input,omitempty"` // Dataset file path
	Refresh bool   `json:"refresh,omitempty"`

	// Mine options. MinRatio, when set, takes precedence over MinSupport
	// and is resolved against the transaction count at mine time.
	MinSupport int     `json:"min_support,omitempty"`
	MinRatio   float64 `json:"min_ratio,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Counts  bool     `json:"counts,omitempty"` // Annotate tree nodes with support counts
	Title   string   `json:"title,omitempty"`  // Title for graphical outputs

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// DatasetName identifies the mined dataset.
	DatasetName string

	// DatasetHash is the content hash of the loaded dataset.
	DatasetHash string

	// Patterns are the frequent itemsets, in deterministic order.
	Patterns fptree.Patterns

	// Summary contains dataset and pattern statistics for reports.
	Summary report.Summary

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TransactionCount int
	ItemCount        int
	PatternCount     int
	LoadTime         time.Duration
	MineTime         time.Duration
	RenderTime       time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the dataset came from cache
	MineHit   bool // Whether the pattern set came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, csv, dot, svg, png, text)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForMine(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" {
		return fmt.Errorf("input is required")
	}
	o.setLoggerDefault()
	return nil
}

// ValidateForMine checks threshold fields and applies mining defaults.
func (o *Options) ValidateForMine() error {
	if o.MinRatio != 0 {
		if o.MinRatio < 0 || o.MinRatio > 1 {
			return fmt.Errorf("min_ratio must be in (0, 1], got %g", o.MinRatio)
		}
	} else {
		if o.MinSupport < 0 {
			return fmt.Errorf("min_support must be positive, got %d", o.MinSupport)
		}
		if o.MinSupport == 0 {
			o.MinSupport = DefaultMinSupport
		}
	}
	o.setLoggerDefault()
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	o.setLoggerDefault()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// EffectiveMinSupport resolves the support threshold against a transaction
// count. When MinRatio is set, the threshold is the smallest integer count
// covering that fraction of the baskets, never below one.
func (o *Options) EffectiveMinSupport(transactionCount int) int {
	if o.MinRatio > 0 {
		n := int(math.Ceil(o.MinRatio * float64(transactionCount)))
		if n < 1 {
			n = 1
		}
		return n
	}
	if o.MinSupport > 0 {
		return o.MinSupport
	}
	return DefaultMinSupport
}

// NeedsTree reports whether any requested format renders the tree itself
// rather than the pattern set.
func (o *Options) NeedsTree() bool {
	for _, f := range o.Formats {
		switch f {
		case FormatDOT, FormatSVG, FormatPNG, FormatText:
			return true
		}
	}
	return false
}

// PatternKeyOpts returns cache key options for the mining stage.
func (o *Options) PatternKeyOpts(effectiveMinSupport int) cache.PatternKeyOpts {
	return cache.PatternKeyOpts{
		MinSupport: effectiveMinSupport,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Counts: o.Counts,
	}
}
