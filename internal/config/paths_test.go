package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePaths(t *testing.T) {
	dir := filepath.Join("opt", "tough")
	cfg := Default()
	cfg.Launch.EntryScript = "src/main.py"

	paths := ResolvePaths(dir, &cfg)
	assert.Equal(t, Paths{
		Dir:         dir,
		ConfigPath:  filepath.Join(dir, "tough.toml"),
		Launcher:    filepath.Join(dir, cfg.Association.Launcher),
		EntryScript: filepath.Join(dir, "src", "main.py"),
	}, paths)
}
