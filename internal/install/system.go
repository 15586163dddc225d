package install

import (
	"os"
)

// System abstracts filesystem operations needed by the installer.
// Stores are passed separately so the registry and the filesystem can be
// faked independently in tests.
type System interface {
	Stat(name string) (os.FileInfo, error)
	Getenv(key string) string
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}
