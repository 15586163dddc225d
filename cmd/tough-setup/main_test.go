package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tough-lang/tough-setup/internal/config"
	"github.com/tough-lang/tough-setup/internal/install"
	"github.com/tough-lang/tough-setup/internal/logging"
	"github.com/tough-lang/tough-setup/internal/messages"
	"github.com/tough-lang/tough-setup/internal/store"
)

func TestMain(m *testing.M) {
	configureLogging = func() io.Closer {
		logging.Configure(io.Discard, slog.LevelDebug)
		return io.NopCloser(nil)
	}
	os.Exit(m.Run())
}

// fixture is an install directory with a launcher, backed by in-memory stores.
type fixture struct {
	dir         string
	launcher    string
	classes     *store.Memory
	userClasses *store.Memory
	env         *store.Memory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	launcher := filepath.Join(dir, config.Default().Association.Launcher)
	require.NoError(t, os.WriteFile(launcher, []byte("#!/bin/sh\n"), 0o755))

	f := &fixture{dir: dir, launcher: launcher, classes: store.NewMemory(), userClasses: store.NewMemory(), env: store.NewMemory()}

	origDir, origClasses, origUserClasses, origEnv, origSys := resolveInstallDir, openClassesStore, openUserClassesStore, openEnvironmentStore, installSystem
	t.Cleanup(func() {
		resolveInstallDir = origDir
		openClassesStore = origClasses
		openUserClassesStore = origUserClasses
		openEnvironmentStore = origEnv
		installSystem = origSys
	})
	resolveInstallDir = func() (string, error) { return dir, nil }
	openClassesStore = func() store.Store { return f.classes }
	openUserClassesStore = func() store.Store { return f.userClasses }
	openEnvironmentStore = func() store.Store { return f.env }
	installSystem = install.RealSystem{}
	return f
}

func (f *fixture) writeConfig(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(config.ConfigPath(f.dir), []byte(content), 0o644))
}

// run executes the CLI through runMain and returns stdout, stderr, and the exit code.
func run(args ...string) (string, string, int) {
	var stdout, stderr bytes.Buffer
	code := 0
	runMain(append([]string{"tough-setup"}, args...), &stdout, &stderr, func(c int) { code = c })
	return stdout.String(), stderr.String(), code
}

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute([]string{"tough-setup", "--version"}, &out, &out))
	assert.Contains(t, out.String(), Version)
}

func TestMainNoArgsPrintsHelp(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute([]string{"tough-setup"}, &out, &out))
	assert.Contains(t, out.String(), messages.AssociateUse)
	assert.Contains(t, out.String(), "add-path")
}

func TestRunMainUnknownCommand(t *testing.T) {
	_, stderr, code := run("unknown")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown command")
}

func TestRunMainExecuteError(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return &install.Error{Kind: install.KindInsufficientPrivilege, Op: "associate", Err: store.ErrAccessDenied}
	}

	_, stderr, code := run("associate")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "insufficient privilege")
	assert.Contains(t, stderr, messages.ElevationHint)
}

func TestRunMainInstallDirError(t *testing.T) {
	newFixture(t)
	resolveInstallDir = func() (string, error) { return "", errors.New("no executable") }

	_, stderr, code := run("associate")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "resolve install directory: no executable")
}

func TestRunMainInvalidConfig(t *testing.T) {
	f := newFixture(t)
	f.writeConfig(t, "[association]\nextention = \".x\"\n")

	_, stderr, code := run("associate")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid config")
	assert.Empty(t, f.classes.Values)
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origBuild })

	Version, Commit, BuildDate = "1.2.3", "unknown", "unknown"
	assert.Equal(t, "1.2.3", versionString())

	Commit, BuildDate = "abc123", "2026-01-02"
	got := versionString()
	assert.True(t, strings.HasPrefix(got, "1.2.3 ("))
	assert.Contains(t, got, "commit abc123")
	assert.Contains(t, got, "built 2026-01-02")
}
