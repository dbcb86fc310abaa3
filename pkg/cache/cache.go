// Package cache provides result caching for the fpgrow pipeline.
//
// Mining a large transaction database and rendering its tree are the
// expensive stages, so both are cached: pattern sets are keyed by a hash of
// the dataset plus the mining options, rendered artifacts by a hash of the
// pattern set plus the render options. Backends exist for local files
// (CLI), Redis (server deployments), and a no-op null cache.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per stage. Datasets and patterns are deterministic for a given
// input, so the TTLs exist mainly to bound disk usage, not for freshness.
const (
	// TTLDataset is how long loaded datasets are cached.
	TTLDataset = 24 * time.Hour

	// TTLPatterns is how long mined pattern sets are cached.
	TTLPatterns = 7 * 24 * time.Hour

	// TTLArtifact is how long rendered artifacts are cached.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key-value store with TTL support.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A non-positive TTL stores the value
	// without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// PatternKeyOpts are the mining options that feed the pattern cache key.
// Two runs with the same dataset hash and the same opts produce identical
// pattern sets, so they may share a cache entry.
type PatternKeyOpts struct {
	MinSupport int     `json:"min_support"`
	MinRatio   float64 `json:"min_ratio,omitempty"`
}

// ArtifactKeyOpts are the render options that feed the artifact cache key.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	MaxItems int    `json:"max_items,omitempty"`
	Counts   bool   `json:"counts,omitempty"`
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// DatasetKey generates a key for a loaded dataset, identified by its
	// source (file path, mongo URI + collection, ...).
	DatasetKey(source string) string

	// PatternKey generates a key for a mined pattern set.
	PatternKey(datasetHash string, opts PatternKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(patternHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator. Keys embed a stage prefix and
// a SHA-256 hash of the identifying inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DatasetKey generates a key for a loaded dataset.
func (k *DefaultKeyer) DatasetKey(source string) string {
	return hashKey("dataset", source)
}

// PatternKey generates a key for a mined pattern set.
func (k *DefaultKeyer) PatternKey(datasetHash string, opts PatternKeyOpts) string {
	return hashKey("patterns", datasetHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(patternHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", patternHash, opts)
}
