package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "laptop,mouse,cable\nmouse, keyboard\n\nmouse\n"
	ds, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	want := [][]string{
		{"laptop", "mouse", "cable"},
		{"mouse", "keyboard"},
		{"mouse"},
	}
	if !reflect.DeepEqual(ds.Transactions, want) {
		t.Errorf("Transactions = %v, want %v", ds.Transactions, want)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("\n\n"))
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("err = %v, want ErrEmptyDataset", err)
	}
}

func TestReadJSONArray(t *testing.T) {
	input := `[["a","b"],["b"]]`
	ds, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	want := [][]string{{"a", "b"}, {"b"}}
	if !reflect.DeepEqual(ds.Transactions, want) {
		t.Errorf("Transactions = %v, want %v", ds.Transactions, want)
	}
}

func TestReadJSONManifest(t *testing.T) {
	input := `{
		"name": "orders",
		"description": "test baskets",
		"transactions": [["a","b"],["a"]]
	}`
	ds, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if ds.Name != "orders" || ds.Description != "test baskets" {
		t.Errorf("metadata = %q/%q, want orders/test baskets", ds.Name, ds.Description)
	}
	if len(ds.Transactions) != 2 {
		t.Errorf("len(Transactions) = %d, want 2", len(ds.Transactions))
	}
}

func TestReadJSONInvalid(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestReadTOML(t *testing.T) {
	input := `
name = "orders"
description = "toml baskets"

[[baskets]]
items = ["laptop", "mouse"]

[[baskets]]
items = ["mouse"]
`
	ds, err := ReadTOML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if ds.Name != "orders" {
		t.Errorf("Name = %q, want orders", ds.Name)
	}
	want := [][]string{{"laptop", "mouse"}, {"mouse"}}
	if !reflect.DeepEqual(ds.Transactions, want) {
		t.Errorf("Transactions = %v, want %v", ds.Transactions, want)
	}
}

func TestReadTOMLNoBaskets(t *testing.T) {
	_, err := ReadTOML(strings.NewReader(`name = "x"`))
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("err = %v, want ErrEmptyDataset", err)
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "baskets.csv")
	if err := os.WriteFile(csvPath, []byte("a,b\nb\n"), 0644); err != nil {
		t.Fatal(err)
	}
	ds, err := Load(csvPath)
	if err != nil {
		t.Fatalf("Load csv: %v", err)
	}
	// Name defaults to the file basename without extension.
	if ds.Name != "baskets" {
		t.Errorf("Name = %q, want baskets", ds.Name)
	}

	badPath := filepath.Join(dir, "baskets.xml")
	if err := os.WriteFile(badPath, []byte("<x/>"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badPath); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load xml err = %v, want ErrUnsupportedFormat", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
