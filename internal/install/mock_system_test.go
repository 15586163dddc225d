package install

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests. Stat falls back to the
// real filesystem so tests can use t.TempDir fixtures.
type testSystem struct {
	RealSystem

	StatFunc   func(name string) (os.FileInfo, error)
	GetenvFunc func(key string) string
}

func (s *testSystem) Stat(name string) (os.FileInfo, error) {
	if s.StatFunc != nil {
		return s.StatFunc(name)
	}
	return s.RealSystem.Stat(name)
}

func (s *testSystem) Getenv(key string) string {
	if s.GetenvFunc != nil {
		return s.GetenvFunc(key)
	}
	return ""
}

// fileAt returns a StatFunc that reports a regular file at exactly path.
func fileAt(path string) func(string) (os.FileInfo, error) {
	return func(name string) (os.FileInfo, error) {
		if name != path {
			return nil, fmt.Errorf("%w: Stat(%s)", errNotMocked, name)
		}
		return fakeFileInfo{name: name}, nil
	}
}

// fileWithMode returns a StatFunc that reports a regular file at exactly path with mode.
func fileWithMode(path string, mode os.FileMode) func(string) (os.FileInfo, error) {
	return func(name string) (os.FileInfo, error) {
		if name != path {
			return nil, fmt.Errorf("%w: Stat(%s)", errNotMocked, name)
		}
		return fakeFileInfo{name: name, mode: mode}, nil
	}
}

type fakeFileInfo struct {
	name string
	dir  bool
	mode os.FileMode
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode {
	if f.mode == 0 {
		return 0o755
	}
	return f.mode
}
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.dir }
func (f fakeFileInfo) Sys() any           { return nil }
