package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tmaxen/fpgrow/pkg/cache"
	"github.com/tmaxen/fpgrow/pkg/dataset"
	"github.com/tmaxen/fpgrow/pkg/fptree"
	"github.com/tmaxen/fpgrow/pkg/render"
	"github.com/tmaxen/fpgrow/pkg/report"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → mine → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	ds, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.DatasetName = ds.Name
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.TransactionCount = len(ds.Transactions)
	result.Stats.ItemCount = len(fptree.CountItems(ds.Transactions))
	result.CacheInfo.LoadHit = loadHit

	// Compute dataset hash for cache keys and API responses
	if data, err := marshalDataset(ds); err == nil {
		result.DatasetHash = cache.Hash(data)
	}

	r.Logger.Info("loaded dataset",
		"name", ds.Name,
		"transactions", result.Stats.TransactionCount,
		"items", result.Stats.ItemCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Mine
	mineStart := time.Now()
	patterns, mineHit, err := r.MineWithCacheInfo(ctx, ds, opts)
	if err != nil {
		return nil, fmt.Errorf("mine: %w", err)
	}
	result.Patterns = patterns
	result.Stats.MineTime = time.Since(mineStart)
	result.Stats.PatternCount = len(patterns)
	result.CacheInfo.MineHit = mineHit

	minSupport := opts.EffectiveMinSupport(len(ds.Transactions))
	result.Summary = report.Build(ds.Name, ds.Transactions, minSupport, patterns)

	r.Logger.Info("mined patterns",
		"patterns", len(patterns),
		"min_support", minSupport,
		"duration", result.Stats.MineTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, ds, patterns, result.Summary, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo reads the dataset with caching and returns cache hit info.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*dataset.Dataset, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.DatasetKey(opts.Input)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			ds, err := unmarshalDataset(data)
			if err == nil {
				return ds, true, nil // Cache hit
			}
		}
	}

	ds, err := dataset.Load(opts.Input)
	if err != nil {
		return nil, false, err
	}
	if len(ds.Transactions) > MaxTransactions {
		return nil, false, fmt.Errorf("dataset too large: %d transactions (max %d)", len(ds.Transactions), MaxTransactions)
	}

	// Cache the result
	if data, err := marshalDataset(ds); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDataset)
	}

	return ds, false, nil // Cache miss
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (*dataset.Dataset, error) {
	ds, _, err := r.LoadWithCacheInfo(ctx, opts)
	return ds, err
}

// MineWithCacheInfo mines frequent itemsets with caching and returns cache hit info.
func (r *Runner) MineWithCacheInfo(ctx context.Context, ds *dataset.Dataset, opts Options) (fptree.Patterns, bool, error) {
	if err := opts.ValidateForMine(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	minSupport := opts.EffectiveMinSupport(len(ds.Transactions))

	// Compute cache key
	data, err := marshalDataset(ds)
	if err != nil {
		return nil, false, fmt.Errorf("serialize dataset for cache key: %w", err)
	}
	datasetHash := cache.Hash(data)
	cacheKey := r.Keyer.PatternKey(datasetHash, opts.PatternKeyOpts(minSupport))

	// Try cache first
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached fptree.Patterns
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to re-mine
		}
	}

	patterns, err := fptree.Mine(ds.Transactions, minSupport)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := json.Marshal(patterns); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPatterns)
	}

	return patterns, false, nil // Cache miss
}

// Mine is a convenience wrapper that calls MineWithCacheInfo and discards the cache hit info.
func (r *Runner) Mine(ctx context.Context, ds *dataset.Dataset, opts Options) (fptree.Patterns, error) {
	patterns, _, err := r.MineWithCacheInfo(ctx, ds, opts)
	return patterns, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, ds *dataset.Dataset, patterns fptree.Patterns, summary report.Summary, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from the pattern set
	patternData, err := json.Marshal(patterns)
	if err != nil {
		return nil, false, fmt.Errorf("serialize patterns for cache key: %w", err)
	}
	patternHash := cache.Hash(patternData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(patternHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	rendered, err := r.renderFormats(ctx, ds, patterns, summary, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(patternHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, ds *dataset.Dataset, patterns fptree.Patterns, summary report.Summary, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, ds, patterns, summary, opts)
	return artifacts, err
}

// renderFormats produces every requested format. Tree-based formats rebuild
// the tree from the dataset; it is deterministic for a given input, so the
// rebuilt tree matches the one the miner used.
func (r *Runner) renderFormats(ctx context.Context, ds *dataset.Dataset, patterns fptree.Patterns, summary report.Summary, opts Options) (map[string][]byte, error) {
	var tree *fptree.Tree
	if opts.NeedsTree() {
		minSupport := opts.EffectiveMinSupport(len(ds.Transactions))
		counts := fptree.CountItems(ds.Transactions)
		order := fptree.FrequentOrder(counts, minSupport)
		tree = fptree.Build(ds.Transactions, order)
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := r.renderFormat(ctx, format, tree, patterns, summary, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func (r *Runner) renderFormat(ctx context.Context, format string, tree *fptree.Tree, patterns fptree.Patterns, summary report.Summary, opts Options) ([]byte, error) {
	renderOpts := render.Options{Counts: opts.Counts, Title: opts.Title}

	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		if err := report.WriteJSON(&buf, summary, patterns); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatCSV:
		var buf bytes.Buffer
		if err := report.WriteCSV(&buf, summary, patterns); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatDOT:
		return []byte(render.ToDOT(tree, renderOpts)), nil
	case FormatSVG:
		return render.RenderSVG(ctx, render.ToDOT(tree, renderOpts))
	case FormatPNG:
		return render.RenderPNG(ctx, render.ToDOT(tree, renderOpts))
	case FormatText:
		var buf bytes.Buffer
		if err := render.WriteText(&buf, tree); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// serializable mirror of dataset.Dataset for cache storage.
type datasetEnvelope struct {
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Transactions [][]string `json:"transactions"`
}

func marshalDataset(ds *dataset.Dataset) ([]byte, error) {
	return json.Marshal(datasetEnvelope{
		Name:         ds.Name,
		Description:  ds.Description,
		Transactions: ds.Transactions,
	})
}

func unmarshalDataset(data []byte) (*dataset.Dataset, error) {
	var env datasetEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if len(env.Transactions) == 0 {
		return nil, fmt.Errorf("empty cached dataset")
	}
	return &dataset.Dataset{
		Name:         env.Name,
		Description:  env.Description,
		Transactions: env.Transactions,
	}, nil
}
