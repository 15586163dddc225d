package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/tough-lang/tough-setup/internal/install"
	"github.com/tough-lang/tough-setup/internal/logging"
	"github.com/tough-lang/tough-setup/internal/messages"
	"github.com/tough-lang/tough-setup/internal/terminal"
)

var executeFunc = execute
var configureLogging = configureFileLogging

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	color.NoColor = !terminal.ColorEnabled(stdout)
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI and exits 1 on any error. Errors are reported
// once, here, with an elevation hint when the OS refused the write.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	closer := configureLogging()
	defer func() { _ = closer.Close() }()

	if err := executeFunc(args, stdout, stderr); err != nil {
		slog.Error("command failed", "args", args, "err", err)
		_, _ = fmt.Fprintln(stderr, err)
		if errors.Is(err, install.ErrInsufficientPrivilege) {
			_, _ = color.New(color.FgYellow).Fprintln(stderr, messages.ElevationHint)
		}
		exit(1)
	}
}

// configureFileLogging points slog at the rotating installer log. When the
// cache directory is unavailable, logs are dropped.
func configureFileLogging() io.Closer {
	level := logging.ParseLevel(os.Getenv(logging.EnvLevel), slog.LevelInfo)
	path, err := logging.DefaultPath()
	if err != nil {
		logging.Configure(io.Discard, level)
		return io.NopCloser(nil)
	}
	return logging.ConfigureFile(path, level)
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
