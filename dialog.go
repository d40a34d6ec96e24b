//go:build dialog
// +build dialog

package main

import (
	"errors"

	"github.com/sqweek/dialog"
)

func pickSavePath(dir string) (string, error) {
	path, err := dialog.File().Filter("Map files", "json").Title("Save map").SetStartDir(dir).Save()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", errPickCancelled
	}
	return path, err
}

func pickLoadPath(dir string) (string, error) {
	path, err := dialog.File().Filter("Map files", "json").Title("Load map").SetStartDir(dir).Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", errPickCancelled
	}
	return path, err
}
