// Package launch forwards an activated file to the interpreter that runs it.
package launch

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/tough-lang/tough-setup/internal/config"
	"github.com/tough-lang/tough-setup/internal/messages"
)

// ErrDependencyMissing is returned when the interpreter cannot be found.
var ErrDependencyMissing = errors.New("dependency missing")

// Command is a resolved interpreter invocation.
type Command struct {
	Path string
	// Args excludes the program name: the entry script, then the forwarded arguments.
	Args []string
}

// Resolve builds the interpreter invocation for args without running it.
// The entry script is resolved against installDir. Its existence is not
// checked; the interpreter reports a missing script itself.
func Resolve(sys System, installDir string, cfg config.Launch, args []string) (Command, error) {
	if sys == nil {
		return Command{}, errors.New(messages.LaunchSystemRequired)
	}
	if installDir == "" {
		return Command{}, errors.New(messages.LaunchInstallDirRequired)
	}
	interpreter := strings.TrimSpace(cfg.Interpreter)
	if interpreter == "" {
		return Command{}, fmt.Errorf("%w: %s", ErrDependencyMissing, messages.LaunchInterpreterEmpty)
	}
	path, err := sys.LookPath(interpreter)
	if err != nil {
		return Command{}, fmt.Errorf("%w: "+messages.LaunchInterpreterMissingFmt, ErrDependencyMissing, interpreter, config.EnvInterpreter, err)
	}

	script := filepath.Join(installDir, filepath.FromSlash(cfg.EntryScript))
	forwarded := make([]string, 0, len(args)+1)
	forwarded = append(forwarded, script)
	forwarded = append(forwarded, args...)
	return Command{Path: path, Args: forwarded}, nil
}

// Forward resolves the interpreter and hands args to it unchanged, after the
// entry script. On Unix it does not return on success.
func Forward(sys System, installDir string, cfg config.Launch, args []string) error {
	cmd, err := Resolve(sys, installDir, cfg, args)
	if err != nil {
		return err
	}
	slog.Debug("forwarding to interpreter", "interpreter", cmd.Path, "args", cmd.Args)
	argv := append([]string{cmd.Path}, cmd.Args...)
	if err := sys.ExecBinary(cmd.Path, argv, sys.Environ()); err != nil {
		return fmt.Errorf(messages.LaunchRunFmt, cmd.Path, err)
	}
	return nil
}
