package main

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	errNoDialog      = errors.New("native file dialog unavailable; build with -tags dialog to enable")
	errPickCancelled = errors.New("file selection cancelled")
)

// normalizeMapPath resolves a typed map name against the maps directory and
// adds the .json extension when missing.
func normalizeMapPath(dir, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if filepath.Ext(name) == "" {
		name += ".json"
	}
	if filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) {
		return filepath.Clean(name)
	}
	return filepath.Join(dir, name)
}
