package errors

import (
	"strings"
	"testing"
)

func TestValidateMinSupport(t *testing.T) {
	tests := []struct {
		name       string
		minSupport int
		wantErr    bool
	}{
		{"positive", 2, false},
		{"one", 1, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMinSupport(tt.minSupport)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMinSupport(%d) error = %v, wantErr %v", tt.minSupport, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSupport) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidSupport)
			}
		})
	}
}

func TestValidateMinRatio(t *testing.T) {
	tests := []struct {
		name    string
		ratio   float64
		wantErr bool
	}{
		{"half", 0.5, false},
		{"one", 1.0, false},
		{"small", 0.001, false},
		{"zero", 0, true},
		{"negative", -0.1, true},
		{"above one", 1.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMinRatio(tt.ratio)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMinRatio(%g) error = %v, wantErr %v", tt.ratio, err, tt.wantErr)
			}
		})
	}
}

func TestValidateItem(t *testing.T) {
	tests := []struct {
		name    string
		item    string
		wantErr bool
	}{
		{"simple", "milk", false},
		{"with spaces", "whole milk", false},
		{"unicode", "café", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 257), true},
		{"control character", "milk\x01", true},
		{"newline", "milk\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItem(tt.item)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItem(%q) error = %v, wantErr %v", tt.item, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDatasetPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative", "testdata/baskets.csv", false},
		{"absolute", "/var/data/baskets.json", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "data\x00.csv", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatasetPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDatasetPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDataset) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidDataset)
			}
		})
	}
}
