// Package assets holds the starter macros shipped inside the binary.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/devin-hart/dungeon-crawltographer/logger"
)

//go:embed macros/*.tengo
var macrosFS embed.FS

// Macros returns the names of the embedded macros, sorted.
func Macros() []string {
	entries, err := fs.ReadDir(macrosFS, "macros")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

// LoadMacro returns the source of an embedded macro by file name.
func LoadMacro(name string) ([]byte, error) {
	return macrosFS.ReadFile(path.Join("macros", path.Base(name)))
}

// Install copies the embedded macros into dir. Files already present are
// left alone so local edits survive. It returns the names written.
func Install(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	var written []string
	for _, name := range Macros() {
		dst := filepath.Join(dir, name)
		if _, err := os.Stat(dst); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return written, fmt.Errorf("assets: %w", err)
		}
		b, err := LoadMacro(name)
		if err != nil {
			return written, fmt.Errorf("assets: %w", err)
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return written, fmt.Errorf("assets: %w", err)
		}
		written = append(written, name)
	}
	if len(written) > 0 {
		logger.Log.WithField("dir", dir).Infof("installed %d starter macros", len(written))
	}
	return written, nil
}
