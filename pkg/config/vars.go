package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "phenodb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/phenodb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/phenodb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/phenodb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/phenodb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// RefDataFilePath returns the full path to the refdata.yaml file that
// holds place names, phase mappings and coordinates.
func RefDataFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "refdata.yaml")
}

// ResultCachePath returns the path of the SQLite file backing the
// aggregate result cache.
func ResultCachePath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "results.sqlite")
}
