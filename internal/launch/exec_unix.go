//go:build !windows

package launch

import "golang.org/x/sys/unix"

var unixExec = unix.Exec

// execBinary replaces the current process with the target binary.
// It only returns on failure.
func execBinary(path string, args []string, env []string) error {
	return unixExec(path, args, env)
}
