package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tmaxen/fpgrow/pkg/fptree"
)

// result is the JSON export envelope.
type result struct {
	Summary  Summary         `json:"summary"`
	Patterns fptree.Patterns `json:"patterns"`
}

// WriteJSON encodes a summary and its pattern set as indented JSON.
// The output can be re-read with [ReadJSON] for round-trip processing.
func WriteJSON(w io.Writer, summary Summary, patterns fptree.Patterns) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result{Summary: summary, Patterns: patterns}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a previously exported result.
func ReadJSON(r io.Reader) (Summary, fptree.Patterns, error) {
	var res result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return Summary{}, nil, fmt.Errorf("decode: %w", err)
	}
	return res.Summary, res.Patterns, nil
}

// WriteCSV writes patterns as CSV rows: itemset (items joined with ";"),
// support count, and support percentage of the transaction total.
func WriteCSV(w io.Writer, summary Summary, patterns fptree.Patterns) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"itemset", "support", "support_pct"}); err != nil {
		return err
	}
	for _, p := range patterns {
		row := []string{
			strings.Join(p.Items, ";"),
			strconv.Itoa(p.Support),
			strconv.FormatFloat(summary.SupportPercent(p), 'f', 1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportJSON writes a result to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(path string, summary Summary, patterns fptree.Patterns) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, summary, patterns)
}

// ExportCSV writes patterns to a CSV file at path.
func ExportCSV(path string, summary Summary, patterns fptree.Patterns) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(f, summary, patterns)
}
