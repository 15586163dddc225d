//go:build windows

package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

func TestMapRegistryErr(t *testing.T) {
	err := mapRegistryErr(".tough", windows.ERROR_ACCESS_DENIED)
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Contains(t, err.Error(), ".tough")

	require.ErrorIs(t, mapRegistryErr(".tough", registry.ErrNotExist), ErrNotFound)

	boom := errors.New("boom")
	err = mapRegistryErr(".tough", boom)
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrAccessDenied)
}

// scratchKey returns a fresh HKCU subkey path that is removed when the test ends.
func scratchKey(t *testing.T) string {
	t.Helper()
	base := `Software\tough-test\` + strings.NewReplacer("/", "_", `\`, "_").Replace(t.Name())
	deleteTree(t, base)
	t.Cleanup(func() { deleteTree(t, base) })
	return base
}

func deleteTree(t *testing.T, path string) {
	t.Helper()
	k, err := registry.OpenKey(registry.CURRENT_USER, path, registry.ENUMERATE_SUB_KEYS)
	if errors.Is(err, registry.ErrNotExist) {
		return
	}
	require.NoError(t, err)
	names, err := k.ReadSubKeyNames(-1)
	_ = k.Close()
	require.NoError(t, err)
	for _, name := range names {
		deleteTree(t, path+`\`+name)
	}
	require.NoError(t, registry.DeleteKey(registry.CURRENT_USER, path))
}

func valueType(t *testing.T, path string, name string) uint32 {
	t.Helper()
	k, err := registry.OpenKey(registry.CURRENT_USER, path, registry.QUERY_VALUE)
	require.NoError(t, err)
	defer func() { _ = k.Close() }()
	_, valType, err := k.GetStringValue(name)
	require.NoError(t, err)
	return valType
}

func TestRegistry_EnvironmentKeepsExpandString(t *testing.T) {
	base := scratchKey(t)
	k, _, err := registry.CreateKey(registry.CURRENT_USER, base, registry.SET_VALUE)
	require.NoError(t, err)
	require.NoError(t, k.SetExpandStringValue("Path", `C:\A`))
	_ = k.Close()

	r := &Registry{root: registry.CURRENT_USER, base: base, byValue: true}
	require.NoError(t, r.Set("Path", `C:\A;C:\B`))

	got, err := r.Get("Path")
	require.NoError(t, err)
	assert.Equal(t, `C:\A;C:\B`, got)
	assert.Equal(t, uint32(registry.EXPAND_SZ), valueType(t, base, "Path"))
}

func TestRegistry_EnvironmentPlainAndVariableValues(t *testing.T) {
	base := scratchKey(t)
	r := &Registry{root: registry.CURRENT_USER, base: base, byValue: true}

	_, err := r.Get("Path")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, r.Set("Plain", `C:\tough`))
	assert.Equal(t, uint32(registry.SZ), valueType(t, base, "Plain"))

	require.NoError(t, r.Set("Expand", `%USERPROFILE%\tough`))
	assert.Equal(t, uint32(registry.EXPAND_SZ), valueType(t, base, "Expand"))
}

func TestRegistry_ClassesRoundTrip(t *testing.T) {
	base := scratchKey(t)
	r := &Registry{root: registry.CURRENT_USER, base: base}

	_, err := r.Get(".tough")
	require.ErrorIs(t, err, ErrNotFound)

	command := `"C:\tough\tough.exe" "%1" %*`
	require.NoError(t, r.Set(`TOUGH.File\shell\open\command`, command))
	require.NoError(t, r.Set(".tough", "TOUGH.File"))

	got, err := r.Get(`TOUGH.File\shell\open\command`)
	require.NoError(t, err)
	assert.Equal(t, command, got)
	assert.Equal(t, uint32(registry.SZ), valueType(t, base+`\TOUGH.File\shell\open\command`, ""))

	got, err = r.Get(".tough")
	require.NoError(t, err)
	assert.Equal(t, "TOUGH.File", got)
}
