// Package installdir locates the directory the running executable was
// installed to. The launcher and installer resolve their sibling files from
// there, never from the working directory.
package installdir

import (
	"os"
	"path/filepath"
)

var (
	osExecutable         = os.Executable
	filepathAbs          = filepath.Abs
	filepathEvalSymlinks = filepath.EvalSymlinks
)

// Resolve returns the absolute, symlink-resolved directory of the running executable.
func Resolve() (string, error) {
	exe, err := osExecutable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(ResolvePath(exe)), nil
}

// ResolvePath returns the absolute, symlink-resolved form of a path.
// If resolution fails at any step, it returns the best result available.
func ResolvePath(path string) string {
	abs, err := filepathAbs(path)
	if err != nil {
		abs = path
	}
	eval, err := filepathEvalSymlinks(abs)
	if err == nil {
		return eval
	}
	return abs
}
