//go:build windows

package launch

import (
	"os"
	"os/exec"
)

// execBinary runs the target binary with inherited stdio and waits for it.
// Windows has no exec(2); a non-zero exit comes back as *exec.ExitError so the
// caller can exit with the same code.
func execBinary(path string, args []string, env []string) error {
	cmd := exec.Command(path, args[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
