package launch

import (
	"os"
	"os/exec"
)

// System abstracts OS operations needed to forward a file to the interpreter.
type System interface {
	LookPath(file string) (string, error)
	Environ() []string
	ExecBinary(path string, args []string, env []string) error
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// LookPath searches the search path for file.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Environ returns a copy of strings representing the environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}

// ExecBinary runs path with args (args[0] is the program name) in place of
// the current process.
func (RealSystem) ExecBinary(path string, args []string, env []string) error {
	return execBinary(path, args, env)
}
