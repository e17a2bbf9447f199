// Package storage keeps player preferences and game results in BadgerDB.
package storage

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

// DefaultDir in data_dir selects the per-user data directory.
const DefaultDir = "default"

const appName = "qchess"

// dataHome returns the per-user data root: $XDG_DATA_HOME or ~/.local/share,
// ~/Library/Application Support on macOS, %APPDATA% on Windows.
func dataHome() (string, error) {
	env, fallback := "XDG_DATA_HOME", []string{".local", "share"}
	switch runtime.GOOS {
	case "darwin":
		env, fallback = "", []string{"Library", "Application Support"}
	case "windows":
		env, fallback = "APPDATA", []string{"AppData", "Roaming"}
	}

	if env != "" {
		if dir := os.Getenv(env); dir != "" {
			return dir, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locate home directory")
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create %s", dir)
	}
	return dir, nil
}

// GetDataDir returns the qchess directory under the per-user data root,
// creating it on first use.
func GetDataDir() (string, error) {
	home, err := dataHome()
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(home, appName))
}

// GetDatabaseDir maps a configured data_dir to the directory NewStorage
// opens. Empty stays empty, which keeps preferences and stats in memory.
// DefaultDir resolves to <data dir>/db. Any other value is used as is.
func GetDatabaseDir(configured string) (string, error) {
	switch configured {
	case "":
		return "", nil
	case DefaultDir:
		dir, err := GetDataDir()
		if err != nil {
			return "", errors.Wrap(err, "locate data dir")
		}
		return ensureDir(filepath.Join(dir, "db"))
	}
	return configured, nil
}
