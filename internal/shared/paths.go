// Package shared provides common utility functions used across multiple
// packages in the windlass codebase.
package shared

import "path/filepath"

const appDirName = "windlass"

// EnvLookup resolves an environment variable; tests inject their own.
type EnvLookup func(string) (string, bool)

// LauncherDir returns the launcher's data directory: LAUNCHER_FOLDER when
// set, else XDG_DATA_HOME/windlass, else HOME/.local/share/windlass.
func LauncherDir(lookup EnvLookup) string {
	if dir, ok := lookup("LAUNCHER_FOLDER"); ok && dir != "" {
		return dir
	}
	if dir, ok := lookup("XDG_DATA_HOME"); ok && dir != "" {
		return filepath.Join(dir, appDirName)
	}
	home, _ := lookup("HOME")
	return filepath.Join(home, ".local", "share", appDirName)
}

// CacheDir returns the launcher's cache directory: CACHE_FOLDER when set,
// else XDG_CACHE_HOME/windlass, else HOME/.cache/windlass.
func CacheDir(lookup EnvLookup) string {
	if dir, ok := lookup("CACHE_FOLDER"); ok && dir != "" {
		return dir
	}
	if dir, ok := lookup("XDG_CACHE_HOME"); ok && dir != "" {
		return filepath.Join(dir, appDirName)
	}
	home, _ := lookup("HOME")
	return filepath.Join(home, ".cache", appDirName)
}
