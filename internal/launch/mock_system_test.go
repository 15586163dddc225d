package launch

import (
	"errors"
	"fmt"
)

var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System. ExecBinary fails fast when not mocked so
// a test can never replace the test binary.
type testSystem struct {
	RealSystem

	LookPathFunc   func(file string) (string, error)
	EnvironFunc    func() []string
	ExecBinaryFunc func(path string, args []string, env []string) error
}

func (s *testSystem) LookPath(file string) (string, error) {
	if s.LookPathFunc != nil {
		return s.LookPathFunc(file)
	}
	return s.RealSystem.LookPath(file)
}

func (s *testSystem) Environ() []string {
	if s.EnvironFunc != nil {
		return s.EnvironFunc()
	}
	return s.RealSystem.Environ()
}

func (s *testSystem) ExecBinary(path string, args []string, env []string) error {
	if s.ExecBinaryFunc != nil {
		return s.ExecBinaryFunc(path, args, env)
	}
	return fmt.Errorf("%w: ExecBinary", errNotMocked)
}
