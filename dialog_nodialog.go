//go:build !dialog
// +build !dialog

package main

// pickSavePath is a stub used when the native dialog build tag isn't set.
func pickSavePath(string) (string, error) {
	return "", errNoDialog
}

func pickLoadPath(string) (string, error) {
	return "", errNoDialog
}
