// Package dataset loads transaction databases for mining.
//
// A dataset is a sequence of baskets, each an unordered list of item
// identifiers. Sources are deliberately dumb: duplicate items within a
// basket and empty baskets are passed through as-is, since the miner
// normalizes transactions itself during counting and canonicalization.
//
// Supported sources are CSV files (one basket per line), JSON files (an
// array of string arrays, or a manifest object), TOML manifests, and
// MongoDB collections.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned by [Load] when the file extension
	// does not map to a known dataset format.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrEmptyDataset is returned when a source parses successfully but
	// contains no baskets at all. A dataset whose baskets simply have no
	// frequent items is not an error; a source with zero baskets usually
	// points at a wrong file or collection.
	ErrEmptyDataset = errors.New("dataset contains no transactions")
)

// Dataset is a named transaction database.
type Dataset struct {
	// Name identifies the dataset in logs and reports. For file sources it
	// defaults to the file basename.
	Name string

	// Description is optional free-form text from manifest sources.
	Description string

	// Transactions are the baskets, unnormalized.
	Transactions [][]string
}

// Load reads a dataset from a local file, dispatching on the extension:
// .csv, .json, and .toml are supported. Returns ErrUnsupportedFormat for
// anything else.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var ds *Dataset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		ds, err = ReadCSV(f)
	case ".json":
		ds, err = ReadJSON(f)
	case ".toml":
		ds, err = ReadTOML(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if ds.Name == "" {
		ds.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return ds, nil
}
