// Package preview renders the writes captured by a store.Recorder as unified diffs.
package preview

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/tough-lang/tough-setup/internal/messages"
	"github.com/tough-lang/tough-setup/internal/store"
)

// Render returns one unified diff per change that alters a value, or "" when
// nothing would change. When delimiter is set, values are split on it so each
// list entry gets its own diff line.
func Render(changes []store.Change, delimiter string) string {
	var b strings.Builder
	for _, change := range changes {
		if change.Existed && change.Previous == change.Value {
			continue
		}
		from := toLines(change.Previous, change.Existed, delimiter)
		to := toLines(change.Value, true, delimiter)
		b.WriteString(udiff.Unified(
			change.Key+" "+messages.DryRunCurrent,
			change.Key+" "+messages.DryRunProposed,
			from,
			to,
		))
	}
	return b.String()
}

func toLines(value string, present bool, delimiter string) string {
	if !present {
		return ""
	}
	if delimiter != "" {
		value = strings.ReplaceAll(value, delimiter, "\n")
	}
	return value + "\n"
}
