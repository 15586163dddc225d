package install

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tough-lang/tough-setup/internal/messages"
	"github.com/tough-lang/tough-setup/internal/store"
)

// FileTypeRecord binds a file type identifier to the command the shell runs
// to open files of that type.
type FileTypeRecord struct {
	Identifier      string
	CommandTemplate string
}

// ExtensionBinding maps a dot-prefixed extension to a file type identifier.
type ExtensionBinding struct {
	Extension  string
	Identifier string
}

// AssociationResult describes a successful Associate call.
type AssociationResult struct {
	Record  FileTypeRecord
	Binding ExtensionBinding
	// Replaced is the identifier the extension was bound to before, when it
	// differed from the new one.
	Replaced string
}

// CommandKey returns the association store key holding the open command for identifier.
func CommandKey(identifier string) string {
	return identifier + `\shell\open\command`
}

// CommandTemplate returns the open command for launcherPath. The shell
// substitutes %1 with the activated file and %* with any further arguments.
func CommandTemplate(launcherPath string) string {
	return fmt.Sprintf(`"%s" "%%1" %%*`, launcherPath)
}

// Associate registers identifier as a file type opened by launcherPath and
// binds ext to it. The type record is written before the extension binding so
// the binding never points at a missing type. Both writes overwrite, so
// repeating the call with the same arguments leaves the store unchanged.
func Associate(sys System, st store.Store, ext string, launcherPath string, identifier string) (AssociationResult, error) {
	op := messages.InstallOpAssociate
	if err := ValidateExtension(ext); err != nil {
		return AssociationResult{}, err
	}
	if err := validateIdentifier(identifier); err != nil {
		return AssociationResult{}, err
	}
	if err := checkLauncher(sys, launcherPath); err != nil {
		return AssociationResult{}, err
	}

	result := AssociationResult{
		Record:  FileTypeRecord{Identifier: identifier, CommandTemplate: CommandTemplate(launcherPath)},
		Binding: ExtensionBinding{Extension: ext, Identifier: identifier},
	}

	previous, err := st.Get(ext)
	switch {
	case err == nil:
		if !strings.EqualFold(previous, identifier) {
			result.Replaced = previous
		}
	case errors.Is(err, store.ErrNotFound):
	default:
		return AssociationResult{}, writeErr(op, nil, fmt.Errorf(messages.InstallReadBindingFmt, ext, err))
	}

	var written []string
	for _, w := range []struct{ key, value string }{
		{CommandKey(identifier), result.Record.CommandTemplate},
		{ext, identifier},
	} {
		if err := st.Set(w.key, w.value); err != nil {
			slog.Error("association write failed", "key", w.key, "written", written, "err", err)
			return AssociationResult{}, writeErr(op, written, err)
		}
		slog.Info("association written", "key", w.key, "value", w.value)
		written = append(written, w.key)
	}
	return result, nil
}

// ResolveCommand follows ext to its file type and returns that type's open command.
func ResolveCommand(st store.Store, ext string) (string, error) {
	op := messages.InstallOpResolve
	identifier, err := st.Get(ext)
	if err != nil {
		return "", &Error{Kind: KindDependencyMissing, Op: op, Err: fmt.Errorf(messages.InstallNoBindingFmt, ext, err)}
	}
	command, err := st.Get(CommandKey(identifier))
	if err != nil {
		return "", &Error{Kind: KindDependencyMissing, Op: op, Err: fmt.Errorf(messages.InstallNoCommandFmt, identifier, err)}
	}
	return command, nil
}

// CommandTarget returns the program a command template invokes.
func CommandTarget(command string) string {
	command = strings.TrimSpace(command)
	if strings.HasPrefix(command, `"`) {
		if end := strings.Index(command[1:], `"`); end >= 0 {
			return command[1 : end+1]
		}
		return command[1:]
	}
	if i := strings.IndexByte(command, ' '); i >= 0 {
		return command[:i]
	}
	return command
}

// ValidateExtension checks that ext is a dot followed by letters, digits, '-' or '_'.
func ValidateExtension(ext string) error {
	op := messages.InstallOpAssociate
	if !strings.HasPrefix(ext, ".") {
		return malformed(op, messages.InstallExtensionNoDotFmt, ext)
	}
	name := ext[1:]
	if name == "" {
		return malformed(op, messages.InstallExtensionInvalidFmt, ext)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return malformed(op, messages.InstallExtensionInvalidFmt, ext)
		}
	}
	return nil
}

func validateIdentifier(identifier string) error {
	if identifier == "" || strings.ContainsAny(identifier, " \t\r\n\"\\") {
		return malformed(messages.InstallOpAssociate, messages.InstallIdentifierInvalidFmt, identifier)
	}
	return nil
}

// checkLauncher refuses to register a command that would point at nothing.
func checkLauncher(sys System, launcherPath string) error {
	op := messages.InstallOpAssociate
	if !isAbs(launcherPath) {
		return malformed(op, messages.InstallLauncherRelativeFmt, launcherPath)
	}
	info, err := sys.Stat(launcherPath)
	if err != nil {
		return &Error{Kind: KindDependencyMissing, Op: op, Err: fmt.Errorf(messages.InstallLauncherMissingFmt, launcherPath, err)}
	}
	if info.IsDir() {
		return malformed(op, messages.InstallLauncherIsDirFmt, launcherPath)
	}
	if !executable(sys, launcherPath, info) {
		return malformed(op, messages.InstallLauncherNotExecutableFmt, launcherPath)
	}
	return nil
}

// hostOS is swapped in tests.
var hostOS = runtime.GOOS

// defaultPathExt is what cmd.exe uses when PATHEXT is unset.
const defaultPathExt = ".COM;.EXE;.BAT;.CMD"

// executable reports whether the shell can run path. Windows paths must end
// in an extension listed in PATHEXT; elsewhere an execute bit must be set.
func executable(sys System, path string, info os.FileInfo) bool {
	if hostOS != "windows" && !isWindowsAbs(path) {
		return info.Mode().Perm()&0o111 != 0
	}
	ext := filepath.Ext(path[strings.LastIndexAny(path, `\/`)+1:])
	if ext == "" {
		return false
	}
	pathExt := sys.Getenv("PATHEXT")
	if strings.TrimSpace(pathExt) == "" {
		pathExt = defaultPathExt
	}
	for _, allowed := range strings.Split(pathExt, PathDelimiter) {
		if strings.EqualFold(strings.TrimSpace(allowed), ext) {
			return true
		}
	}
	return false
}

// isAbs accepts Windows absolute paths (drive or UNC) on any host, plus
// whatever the host itself considers absolute.
func isAbs(path string) bool {
	return filepath.IsAbs(path) || isWindowsAbs(path)
}

func isWindowsAbs(path string) bool {
	if strings.HasPrefix(path, `\\`) && len(path) > 2 {
		return true
	}
	if len(path) >= 3 && path[1] == ':' && (path[2] == '\\' || path[2] == '/') {
		c := path[0]
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	}
	return false
}
