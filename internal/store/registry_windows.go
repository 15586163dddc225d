//go:build windows

package store

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// Registry is a Store backed by the Windows registry.
type Registry struct {
	root registry.Key
	base string
	// byValue stores keys as value names under base instead of subkeys of base.
	byValue bool
}

// NewClasses returns the machine-wide file association store
// (HKLM\Software\Classes). Keys are subkey paths; values are their default value.
func NewClasses() *Registry {
	return &Registry{root: registry.LOCAL_MACHINE, base: `Software\Classes`}
}

// NewUserClasses returns the current user's file associations
// (HKCU\Software\Classes), which Windows reads before the machine-wide ones.
func NewUserClasses() *Registry {
	return &Registry{root: registry.CURRENT_USER, base: `Software\Classes`}
}

// NewUserEnvironment returns the current user's persisted environment
// (HKCU\Environment). Keys are variable names.
func NewUserEnvironment() *Registry {
	return &Registry{root: registry.CURRENT_USER, base: `Environment`, byValue: true}
}

func (r *Registry) locate(key string) (string, string) {
	if r.byValue {
		return r.base, key
	}
	return r.base + `\` + strings.Trim(key, `\`), ""
}

// Get returns the string value stored under key.
func (r *Registry) Get(key string) (string, error) {
	path, name := r.locate(key)
	k, err := registry.OpenKey(r.root, path, registry.QUERY_VALUE)
	if err != nil {
		return "", mapRegistryErr(key, err)
	}
	defer func() { _ = k.Close() }()
	value, _, err := k.GetStringValue(name)
	if err != nil {
		return "", mapRegistryErr(key, err)
	}
	return value, nil
}

// Set writes value under key, creating intermediate keys as needed.
// Environment values that are already REG_EXPAND_SZ, or that reference
// %VARIABLES%, are written as REG_EXPAND_SZ.
func (r *Registry) Set(key string, value string) error {
	path, name := r.locate(key)
	k, _, err := registry.CreateKey(r.root, path, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return mapRegistryErr(key, err)
	}
	defer func() { _ = k.Close() }()

	expand := strings.Contains(value, "%")
	if _, valType, err := k.GetStringValue(name); err == nil && valType == registry.EXPAND_SZ {
		expand = true
	}
	if expand && r.byValue {
		err = k.SetExpandStringValue(name, value)
	} else {
		err = k.SetStringValue(name, value)
	}
	if err != nil {
		return mapRegistryErr(key, err)
	}
	return nil
}

func mapRegistryErr(key string, err error) error {
	switch {
	case errors.Is(err, registry.ErrNotExist):
		return fmt.Errorf("%s: %w", key, ErrNotFound)
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return fmt.Errorf("%s: %w", key, ErrAccessDenied)
	default:
		return fmt.Errorf("%s: %w", key, err)
	}
}
