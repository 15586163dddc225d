package install

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf16"

	"github.com/tough-lang/tough-setup/internal/messages"
	"github.com/tough-lang/tough-setup/internal/store"
)

const (
	// PathVariable is the environment store key for the search path.
	PathVariable = "Path"
	// PathDelimiter separates search path entries.
	PathDelimiter = ";"
	// MaxEnvValueLength is the longest value, in UTF-16 code units, Windows
	// accepts for an environment variable (32767 including the terminator).
	MaxEnvValueLength = 32766
)

// AppendToUserPath appends newDir to the user's persisted Path unless an equal
// entry is already there. It reports whether the stored value changed.
// Processes that are already running keep their old Path.
func AppendToUserPath(st store.Store, newDir string) (bool, error) {
	op := messages.InstallOpAddPath
	if !isAbs(newDir) {
		return false, malformed(op, messages.InstallDirRelativeFmt, newDir)
	}
	if strings.Contains(newDir, PathDelimiter) {
		return false, malformed(op, messages.InstallDirDelimiterFmt, newDir)
	}

	current, err := readPath(st)
	if err != nil {
		return false, writeErr(op, nil, err)
	}
	if containsEntry(current, newDir) {
		slog.Info("path entry already present", "dir", newDir)
		return false, nil
	}

	updated := appendEntry(current, newDir)
	if n := len(utf16.Encode([]rune(updated))); n > MaxEnvValueLength {
		return false, &Error{Kind: KindPathTooLong, Op: op, Err: fmt.Errorf(messages.InstallPathTooLongFmt, n, MaxEnvValueLength)}
	}
	if err := st.Set(PathVariable, updated); err != nil {
		slog.Error("path write failed", "dir", newDir, "err", err)
		return false, writeErr(op, nil, err)
	}
	slog.Info("path entry added", "dir", newDir)
	return true, nil
}

// PathContains reports whether dir is an entry of the user's persisted Path.
func PathContains(st store.Store, dir string) (bool, error) {
	current, err := readPath(st)
	if err != nil {
		return false, err
	}
	return containsEntry(current, dir), nil
}

func readPath(st store.Store) (string, error) {
	current, err := st.Get(PathVariable)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf(messages.InstallReadPathFmt, err)
	}
	return current, nil
}

func appendEntry(current string, dir string) string {
	if current == "" || strings.HasSuffix(current, PathDelimiter) {
		return current + dir
	}
	return current + PathDelimiter + dir
}

func containsEntry(pathValue string, dir string) bool {
	want := normalizeEntry(dir)
	for _, entry := range strings.Split(pathValue, PathDelimiter) {
		if entry != "" && strings.EqualFold(normalizeEntry(entry), want) {
			return true
		}
	}
	return false
}

// normalizeEntry drops what Windows ignores when matching Path entries:
// surrounding quotes and whitespace, separator style, trailing separators.
// Case is left to the caller.
func normalizeEntry(entry string) string {
	entry = strings.Trim(strings.TrimSpace(entry), `"`)
	entry = strings.ReplaceAll(entry, "/", `\`)
	trimmed := strings.TrimRight(entry, `\`)
	if trimmed == "" || strings.HasSuffix(trimmed, ":") {
		return entry
	}
	return trimmed
}
