package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tough-lang/tough-setup/internal/config"
	"github.com/tough-lang/tough-setup/internal/install"
	"github.com/tough-lang/tough-setup/internal/installdir"
	"github.com/tough-lang/tough-setup/internal/messages"
	"github.com/tough-lang/tough-setup/internal/preview"
	"github.com/tough-lang/tough-setup/internal/store"
)

// Seams for tests; production uses the running executable and the registry.
var (
	resolveInstallDir    = installdir.Resolve
	openClassesStore     = func() store.Store { return store.NewClasses() }
	openUserClassesStore = func() store.Store { return store.NewUserClasses() }
	openEnvironmentStore = func() store.Store { return store.NewUserEnvironment() }
)

var installSystem install.System = install.RealSystem{}

// setup is the install directory and its tough.toml, resolved once per run.
type setup struct {
	cfg   *config.Config
	paths config.Paths
}

func loadSetup() (setup, error) {
	dir, err := resolveInstallDir()
	if err != nil {
		return setup{}, fmt.Errorf(messages.ResolveInstallDirFmt, err)
	}
	cfg, err := config.Load(config.ConfigPath(dir))
	if err != nil {
		return setup{}, err
	}
	return setup{cfg: cfg, paths: config.ResolvePaths(dir, cfg)}, nil
}

// maybeRecord wraps st in a Recorder for dry runs.
func maybeRecord(st store.Store, dryRun bool) (store.Store, *store.Recorder) {
	if !dryRun {
		return st, nil
	}
	rec := store.NewRecorder(st)
	return rec, rec
}

func printDryRun(out io.Writer, rec *store.Recorder, delimiter string) {
	_, _ = fmt.Fprintln(out, messages.DryRunHeader)
	diff := preview.Render(rec.Changes, delimiter)
	if diff == "" {
		_, _ = fmt.Fprintln(out, messages.DryRunNoChanges)
		return
	}
	_, _ = fmt.Fprint(out, diff)
}

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
)
