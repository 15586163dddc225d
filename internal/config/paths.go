package config

import "path/filepath"

// Paths holds resolved paths inside an install directory.
type Paths struct {
	Dir         string
	ConfigPath  string
	Launcher    string
	EntryScript string
}

// ConfigPath returns the tough.toml location for an install directory.
func ConfigPath(dir string) string {
	return filepath.Join(dir, FileName)
}

// ResolvePaths returns the install paths for dir under cfg.
func ResolvePaths(dir string, cfg *Config) Paths {
	return Paths{
		Dir:         dir,
		ConfigPath:  ConfigPath(dir),
		Launcher:    filepath.Join(dir, cfg.Association.Launcher),
		EntryScript: filepath.Join(dir, filepath.FromSlash(cfg.Launch.EntryScript)),
	}
}
