//go:build !windows

package store

// Registry stands in for the Windows registry store; every call fails with
// ErrUnsupportedPlatform.
type Registry struct{}

// NewClasses returns the file association store.
func NewClasses() *Registry {
	return &Registry{}
}

// NewUserClasses returns the per-user file association store.
func NewUserClasses() *Registry {
	return &Registry{}
}

// NewUserEnvironment returns the user environment store.
func NewUserEnvironment() *Registry {
	return &Registry{}
}

// Get always fails with ErrUnsupportedPlatform.
func (*Registry) Get(string) (string, error) {
	return "", ErrUnsupportedPlatform
}

// Set always fails with ErrUnsupportedPlatform.
func (*Registry) Set(string, string) error {
	return ErrUnsupportedPlatform
}
