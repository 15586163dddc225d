// Package store models the OS-wide configuration the installer mutates
// (file associations and user environment variables) as a flat key-value store.
package store

import (
	"errors"
	"sort"
)

var (
	// ErrNotFound is returned by Get when the key has no value.
	ErrNotFound = errors.New("key not found")
	// ErrAccessDenied is returned when the OS rejects a write for lack of rights.
	ErrAccessDenied = errors.New("access denied")
	// ErrUnsupportedPlatform is returned by OS-backed stores on platforms without them.
	ErrUnsupportedPlatform = errors.New("store is not supported on this platform")
)

// Store reads and writes string values by key.
// Set fully overwrites any previous value.
type Store interface {
	Get(key string) (string, error)
	Set(key string, value string) error
}

// Memory is an in-memory Store.
type Memory struct {
	Values map[string]string
	// SetErr, when non-nil, is consulted before every write; a non-nil result rejects it.
	SetErr func(key string) error
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{Values: map[string]string{}}
}

// Get returns the value for key or ErrNotFound.
func (m *Memory) Get(key string) (string, error) {
	value, ok := m.Values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set stores value under key.
func (m *Memory) Set(key string, value string) error {
	if m.SetErr != nil {
		if err := m.SetErr(key); err != nil {
			return err
		}
	}
	if m.Values == nil {
		m.Values = map[string]string{}
	}
	m.Values[key] = value
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *Memory) Keys() []string {
	keys := make([]string, 0, len(m.Values))
	for key := range m.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Change is a write captured by Recorder.
type Change struct {
	Key      string
	Previous string
	Existed  bool
	Value    string
}

// Recorder reads through to Base but keeps writes in memory, so a caller can
// see what an operation would change without touching Base.
type Recorder struct {
	Base    Store
	Changes []Change
	pending map[string]string
}

// NewRecorder wraps base.
func NewRecorder(base Store) *Recorder {
	return &Recorder{Base: base, pending: map[string]string{}}
}

// Get returns a pending write for key if there is one, else the Base value.
func (r *Recorder) Get(key string) (string, error) {
	if value, ok := r.pending[key]; ok {
		return value, nil
	}
	return r.Base.Get(key)
}

// Set records the write without forwarding it.
func (r *Recorder) Set(key string, value string) error {
	previous, err := r.Get(key)
	existed := true
	if errors.Is(err, ErrNotFound) {
		existed = false
	} else if err != nil {
		return err
	}
	if r.pending == nil {
		r.pending = map[string]string{}
	}
	r.pending[key] = value
	r.Changes = append(r.Changes, Change{Key: key, Previous: previous, Existed: existed, Value: value})
	return nil
}

// Overlay reads Top before Base, the way Windows merges per-user file
// associations over the machine-wide ones. Writes go to Top.
type Overlay struct {
	Top  Store
	Base Store
}

// Get returns the Top value for key, or the Base value when Top has none.
func (o Overlay) Get(key string) (string, error) {
	value, err := o.Top.Get(key)
	if !errors.Is(err, ErrNotFound) {
		return value, err
	}
	return o.Base.Get(key)
}

// Set writes value to Top.
func (o Overlay) Set(key string, value string) error {
	return o.Top.Set(key, value)
}
