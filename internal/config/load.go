// Package config loads tough.toml, the optional settings file installed next
// to the tough executables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/tough-lang/tough-setup/internal/messages"
)

// FileName is the config file looked up in the install directory.
const FileName = "tough.toml"

// EnvInterpreter overrides launch.interpreter when set.
const EnvInterpreter = "TOUGH_INTERPRETER"

// Config is the contents of tough.toml.
type Config struct {
	Association Association `toml:"association"`
	Launch      Launch      `toml:"launch"`
}

// Association configures what associate registers.
type Association struct {
	Extension  string `toml:"extension"`
	Identifier string `toml:"identifier"`
	// Launcher is the launcher's file name inside the install directory.
	Launcher string `toml:"launcher"`
}

// Launch configures how the launcher forwards a file.
type Launch struct {
	// Interpreter is looked up on the search path.
	Interpreter string `toml:"interpreter"`
	// EntryScript is relative to the install directory.
	EntryScript string `toml:"entry_script"`
}

// Default returns the built-in configuration.
func Default() Config {
	launcher := "tough"
	if runtime.GOOS == "windows" {
		launcher = "tough.exe"
	}
	return Config{
		Association: Association{
			Extension:  ".tough",
			Identifier: "TOUGH.File",
			Launcher:   launcher,
		},
		Launch: Launch{
			Interpreter: "python",
			EntryScript: "main.py",
		},
	}
}

// Load reads the config at file on top of Default. A missing file is not an
// error. TOUGH_INTERPRETER, when set, replaces launch.interpreter.
func Load(file string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf(messages.ConfigReadFmt, file, err)
	default:
		if err := decodeStrict(data, &cfg); err != nil {
			return nil, fmt.Errorf(messages.ConfigInvalidFmt, file, err)
		}
	}
	if override := strings.TrimSpace(os.Getenv(EnvInterpreter)); override != "" {
		cfg.Launch.Interpreter = override
	}
	if err := cfg.Validate(file); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decodeStrict rejects keys the Config struct does not know, so a typo does
// not silently fall back to a default.
func decodeStrict(data []byte, cfg *Config) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(cfg)
}

// Validate checks that every field is usable. source names the file in errors.
func (c *Config) Validate(source string) error {
	required := []struct{ name, value string }{
		{"association.extension", c.Association.Extension},
		{"association.identifier", c.Association.Identifier},
		{"association.launcher", c.Association.Launcher},
		{"launch.interpreter", c.Launch.Interpreter},
		{"launch.entry_script", c.Launch.EntryScript},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf(messages.ConfigFieldEmptyFmt, source, field.name)
		}
	}
	if strings.ContainsAny(c.Association.Launcher, `/\`) {
		return fmt.Errorf(messages.ConfigFieldNotBareFmt, source, "association.launcher")
	}
	script := path.Clean(strings.ReplaceAll(c.Launch.EntryScript, `\`, "/"))
	if path.IsAbs(script) || strings.Contains(script, ":") || script == ".." || strings.HasPrefix(script, "../") {
		return fmt.Errorf(messages.ConfigFieldNotRelativeFmt, source, "launch.entry_script")
	}
	return nil
}
