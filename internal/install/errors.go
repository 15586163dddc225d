package install

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tough-lang/tough-setup/internal/store"
)

// Kind classifies installer failures.
type Kind int

// Failure kinds.
const (
	KindUnknown Kind = iota
	// KindInsufficientPrivilege means the OS rejected a write for lack of rights.
	// Retrying from an elevated prompt is expected to fix it.
	KindInsufficientPrivilege
	// KindMalformedInput means an extension, identifier, or path has the wrong shape.
	KindMalformedInput
	// KindPersistFailed means a store write failed for a reason other than rights.
	KindPersistFailed
	// KindPathTooLong means the new value would exceed the OS variable length limit.
	KindPathTooLong
	// KindDependencyMissing means a file the operation points at does not exist.
	KindDependencyMissing
)

// Sentinels for errors.Is against *Error.
var (
	ErrInsufficientPrivilege = &Error{Kind: KindInsufficientPrivilege}
	ErrMalformedInput        = &Error{Kind: KindMalformedInput}
	ErrPersistFailed         = &Error{Kind: KindPersistFailed}
	ErrPathTooLong           = &Error{Kind: KindPathTooLong}
	ErrDependencyMissing     = &Error{Kind: KindDependencyMissing}
)

func (k Kind) String() string {
	switch k {
	case KindInsufficientPrivilege:
		return "insufficient privilege"
	case KindMalformedInput:
		return "malformed input"
	case KindPersistFailed:
		return "persist failed"
	case KindPathTooLong:
		return "path too long"
	case KindDependencyMissing:
		return "dependency missing"
	default:
		return "unknown"
	}
}

// Error is returned by every installer operation.
type Error struct {
	Kind Kind
	Op   string
	// Written lists the store keys written before the failure, in order.
	Written []string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if len(e.Written) > 0 {
		fmt.Fprintf(&b, " (already written: %s)", strings.Join(e.Written, ", "))
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same Kind, so the package sentinels work
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Err == nil
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func malformed(op string, format string, args ...any) *Error {
	return &Error{Kind: KindMalformedInput, Op: op, Err: fmt.Errorf(format, args...)}
}

// writeErr classifies a failed store write.
func writeErr(op string, written []string, err error) *Error {
	kind := KindPersistFailed
	if errors.Is(err, store.ErrAccessDenied) {
		kind = KindInsufficientPrivilege
	}
	return &Error{Kind: kind, Op: op, Written: written, Err: err}
}
