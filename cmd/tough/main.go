// Command tough is the launcher Windows runs when a .tough file is opened.
// It forwards the file and any extra arguments to the interpreter, after the
// entry script installed next to it:
//
//	tough C:\f.tough --x  =>  python <install dir>\main.py C:\f.tough --x
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/tough-lang/tough-setup/internal/config"
	"github.com/tough-lang/tough-setup/internal/installdir"
	"github.com/tough-lang/tough-setup/internal/launch"
	"github.com/tough-lang/tough-setup/internal/logging"
	"github.com/tough-lang/tough-setup/internal/messages"
)

var (
	resolveInstallDir = installdir.Resolve
	forward           = launch.Forward
)

var launchSystem launch.System = launch.RealSystem{}

func main() {
	runMain(os.Args, os.Stderr, os.Exit)
}

// runMain forwards args[1:] and exits non-zero if forwarding fails. An
// interpreter that ran and failed has already reported why; only its exit
// code is passed on.
func runMain(args []string, stderr io.Writer, exit func(int)) {
	logging.Configure(stderr, logging.ParseLevel(os.Getenv(logging.EnvLevel), slog.LevelWarn))

	if err := run(args[1:]); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code <= 0 {
				code = 1
			}
			exit(code)
			return
		}
		_, _ = fmt.Fprintf(stderr, messages.LaunchErrorFmt, err)
		exit(1)
		return
	}
	exit(0)
}

func run(args []string) error {
	dir, err := resolveInstallDir()
	if err != nil {
		return fmt.Errorf(messages.ResolveInstallDirFmt, err)
	}
	cfg, err := config.Load(config.ConfigPath(dir))
	if err != nil {
		return err
	}
	return forward(launchSystem, dir, cfg.Launch, args)
}
