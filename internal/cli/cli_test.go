package cli

import (
	"io"
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Run("respects XDG_CACHE_HOME", func(t *testing.T) {
		tmp := t.TempDir()
		t.Setenv("XDG_CACHE_HOME", tmp)

		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir() error = %v", err)
		}
		want := filepath.Join(tmp, appName)
		if dir != want {
			t.Errorf("cacheDir() = %q, want %q", dir, want)
		}
	})

	t.Run("falls back to home", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "")

		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir() error = %v", err)
		}
		if filepath.Base(dir) != appName {
			t.Errorf("cacheDir() = %q, want path ending in %q", dir, appName)
		}
	})
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		want     []string
	}{
		{"empty uses fallback", "", "json", []string{"json"}},
		{"single", "csv", "json", []string{"csv"}},
		{"multiple", "dot,svg", "json", []string{"dot", "svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input, tt.fallback)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseFormats()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "fpgrow" {
		t.Errorf("root.Use = %q, want %q", root.Use, "fpgrow")
	}

	want := []string{"mine", "render", "browse", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
