package errors

import (
	"strings"
	"unicode"
)

// ValidateMinSupport validates an absolute minimum-support threshold.
// Support is a transaction count, so it must be a positive integer. The
// check runs at the API boundary before any scan begins; the mining core
// never treats a non-positive threshold as "no threshold".
func ValidateMinSupport(minSupport int) error {
	if minSupport <= 0 {
		return New(ErrCodeInvalidSupport, "minimum support must be a positive count, got %d", minSupport)
	}
	return nil
}

// ValidateMinRatio validates a relative minimum-support threshold,
// expressed as a fraction of the transaction count in (0, 1].
func ValidateMinRatio(ratio float64) error {
	if ratio <= 0 || ratio > 1 {
		return New(ErrCodeInvalidSupport, "minimum support ratio must be in (0, 1], got %g", ratio)
	}
	return nil
}

// ValidateItem validates an item identifier arriving over the API.
// Items are opaque, but identifiers with control characters or excessive
// length are almost always corrupted input.
func ValidateItem(item string) error {
	if item == "" {
		return New(ErrCodeInvalidInput, "item identifier cannot be empty")
	}
	if len(item) > 256 {
		return New(ErrCodeInvalidInput, "item identifier too long (max 256 characters)")
	}
	for _, r := range item {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "item identifier contains control characters")
		}
	}
	return nil
}

// ValidateDatasetPath validates a dataset file path for safety.
// It prevents path traversal and rejects unreasonable lengths.
func ValidateDatasetPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidDataset, "dataset path cannot be empty")
	}
	if len(path) > 500 {
		return New(ErrCodeInvalidDataset, "dataset path too long (max 500 characters)")
	}
	if strings.Contains(path, "\x00") {
		return New(ErrCodeInvalidDataset, "dataset path contains null bytes")
	}
	return nil
}
