package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmaxen/fpgrow/pkg/pipeline"
)

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.json, .svg, etc.), it strips that extension.
// This is used when generating multiple files (e.g., baskets.json, baskets.svg).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// formatExt maps a format to its file extension. Text output uses .txt
// rather than .text.
func formatExt(format string) string {
	if format == pipeline.FormatText {
		return "txt"
	}
	return format
}

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string // input path, used to derive output names
	output    string // explicit output path or base path
}

// writeArtifacts writes rendered artifacts to files, or to stdout when a
// single format was requested and no output path is set.
func writeArtifacts(p artifactWriteParams) error {
	// Single format with no explicit output goes to stdout. Binary formats
	// still get a derived file name so the terminal stays usable.
	if len(p.formats) == 1 && p.output == "" {
		format := p.formats[0]
		if format != pipeline.FormatPNG && format != pipeline.FormatSVG {
			_, err := os.Stdout.Write(p.artifacts[format])
			return err
		}
	}

	base := basePath(p.output, p.input)
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}

		var path string
		if len(p.formats) == 1 && p.output != "" {
			path = p.output
		} else {
			path = fmt.Sprintf("%s.%s", base, formatExt(format))
		}

		out, err := openOutput(path)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}
