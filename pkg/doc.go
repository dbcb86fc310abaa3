// Package pkg provides the core libraries for fpgrow frequent-itemset mining.
//
// # Overview
//
// fpgrow extracts frequent itemsets from transaction databases using the
// FP-Growth algorithm, which compresses the database into a prefix-sharing
// tree and mines it recursively without candidate generation. The pkg
// directory is organized into these areas:
//
//  1. [fptree] - Domain logic (item counting, FP-tree, pattern mining)
//  2. [dataset], [cache] - Infrastructure (sources, result caching)
//  3. [render], [report] - Output (tree drawing, statistics, exports)
//  4. [pipeline] - Orchestration (load → mine → render)
//
// # Architecture
//
// The typical data flow through fpgrow:
//
//	CSV/JSON/TOML file or MongoDB collection
//	         ↓
//	    [dataset] package (load transactions)
//	         ↓
//	    [fptree] package (count, build tree, mine patterns)
//	         ↓
//	    [render] / [report] packages (visualize + export)
//	         ↓
//	    JSON/CSV/DOT/SVG/PNG/text output
//
// # Quick Start
//
// Mine a dataset and inspect the patterns:
//
//	import (
//	    "github.com/tmaxen/fpgrow/pkg/dataset"
//	    "github.com/tmaxen/fpgrow/pkg/fptree"
//	)
//
//	// 1. Load the transaction database
//	ds, _ := dataset.Load("baskets.csv")
//
//	// 2. Mine frequent itemsets
//	patterns, _ := fptree.Mine(ds.Transactions, 3)
//
//	// 3. Look up supports
//	support, ok := patterns.Support("bread", "milk")
//
// # Main Packages
//
// ## Core Domain Logic
//
// [fptree] - The FP-Growth implementation: transaction counting and
// canonical ordering, the FP-tree with its header table, conditional
// pattern bases, and the recursive miner with its single-path shortcut.
//
// ## Infrastructure
//
// [dataset] - Transaction sources: CSV, JSON, and TOML files plus MongoDB
// collections.
//
// [cache] - Per-stage result caching keyed by content hashes. FileCache for
// the CLI, RedisCache for server deployments, NullCache to disable.
//
// ## Output
//
// [render] - FP-tree drawing: Graphviz DOT plus SVG/PNG rasterization and
// an ASCII tree for terminals.
//
// [report] - Run statistics (pattern counts by size, top patterns) and
// JSON/CSV exports.
//
// ## Orchestration
//
// [pipeline] - Complete mining pipeline (load → mine → render) used by CLI
// and API. Ensures consistent behavior across all entry points.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/fptree/...     # Specific package
//	go test -run Example         # Examples only
//
// [fptree]: https://pkg.go.dev/github.com/tmaxen/fpgrow/pkg/fptree
// [dataset]: https://pkg.go.dev/github.com/tmaxen/fpgrow/pkg/dataset
// [cache]: https://pkg.go.dev/github.com/tmaxen/fpgrow/pkg/cache
// [render]: https://pkg.go.dev/github.com/tmaxen/fpgrow/pkg/render
// [report]: https://pkg.go.dev/github.com/tmaxen/fpgrow/pkg/report
// [pipeline]: https://pkg.go.dev/github.com/tmaxen/fpgrow/pkg/pipeline
package pkg
