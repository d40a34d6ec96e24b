package main

import (
	"path/filepath"
	"testing"
)

func TestNormalizeMapPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "dungeon")
	tests := []struct {
		name, in, want string
	}{
		{"empty", "  ", ""},
		{"bare name", "crypt", filepath.Join("maps", "crypt.json")},
		{"keeps extension", "crypt.map", filepath.Join("maps", "crypt.map")},
		{"relative path", filepath.Join("other", "crypt"), filepath.Join("other", "crypt.json")},
		{"absolute", abs, abs + ".json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeMapPath("maps", tt.in); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
