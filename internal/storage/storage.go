package storage

import (
	"os"
	"path/filepath"
	"strings"
)

// ForPath picks a provider from the config path: a .db extension selects
// the SQLite store, anything else the single-blob JSON store.
func ForPath(path string) Provider {
	if strings.EqualFold(filepath.Ext(path), ".db") {
		return NewSQLiteStore(path)
	}
	return NewJSONStore(path)
}

// ExpandHome resolves a leading ~/ against the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
