package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "protdb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/protdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory that keeps the default SQLite catalog.
// Returns ~/.local/share/protdb by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/protdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/protdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DBFilePath returns the SQLite file of the catalog: Database.Path when
// it is set, ~/.local/share/protdb/protdb.sqlite otherwise.
func (c *Config) DBFilePath() string {
	if c.Database.Path != "" {
		return c.Database.Path
	}
	return filepath.Join(DataDir(c.HomeDir), AppName+".sqlite")
}
