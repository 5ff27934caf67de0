package capability_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fs/billy"

	"github.com/jmgilman/go/sysfs/capability"
	"github.com/jmgilman/go/sysfs/captest"
	"github.com/jmgilman/go/sysfs/pathext"
	"github.com/jmgilman/go/sysfs/platform"
)

func TestPermissive_Conformance(t *testing.T) {
	captest.TestSuite(t, func() capability.Provider {
		return capability.NewPermissive(capability.WithRegistry(pathext.Fixed(".COM", ".EXE", ".BAT", ".CMD")))
	}, captest.PermissiveConfig())
}

// newMemoryProvider returns a Permissive provider over an in-memory
// filesystem seeded with a small tool tree.
func newMemoryProvider(t *testing.T, pathExt string) *capability.Permissive {
	t.Helper()

	mem := billy.NewMemory()
	require.NoError(t, mem.MkdirAll("tools/bin.exe", 0o755))
	for _, name := range []string{"tools/run.exe", "tools/Build.CMD", "tools/deploy.ps1", "tools/script", "tools/notes.txt"} {
		require.NoError(t, mem.WriteFile(name, []byte("x"), 0o644))
	}

	env := platform.Map(map[string]string{platform.EnvPathExt: pathExt})
	return capability.NewPermissive(
		capability.WithFilesystem(mem),
		capability.WithRegistry(pathext.New(env)),
	)
}

func TestPermissive_Executable(t *testing.T) {
	p := newMemoryProvider(t, ".COM;.EXE;.BAT;.CMD")

	tests := []struct {
		path string
		want bool
	}{
		{"tools/run.exe", true},
		{"tools/Build.CMD", true},
		{"tools/deploy.ps1", false},
		{"tools/script", false},
		{"tools/notes.txt", false},
		{"tools/bin.exe", false},
		{"tools/missing.exe", false},
		{"tools", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Executable(tt.path))
		})
	}
}

func TestPermissive_IsRegular(t *testing.T) {
	p := newMemoryProvider(t, "")

	assert.True(t, p.IsRegular("tools/run.exe"))
	assert.True(t, p.IsRegular("tools/script"))
	assert.False(t, p.IsRegular("tools/bin.exe"))
	assert.False(t, p.IsRegular("tools"))
	assert.False(t, p.IsRegular("tools/missing.exe"))
}

func TestPermissive_ExecutableCustomPathExt(t *testing.T) {
	p := newMemoryProvider(t, ".PS1;exe")

	assert.True(t, p.Executable("tools/deploy.ps1"))
	assert.True(t, p.Executable("tools/run.exe"))
	assert.False(t, p.Executable("tools/Build.CMD"), ".CMD is not registered")
	assert.Equal(t, []string{".PS1", ".exe"}, p.Registry().Extensions())
}

func TestPermissive_ConstantPredicates(t *testing.T) {
	p := newMemoryProvider(t, "")

	for _, path := range []string{"tools/run.exe", "tools/script", "missing", ""} {
		got := capability.Query(p, path)
		want := capability.Result{
			Readable:   true,
			Writable:   true,
			Executable: path == "tools/run.exe",
		}
		assert.Equal(t, want, got, path)
	}
}

func TestPermissive_IdentityIsUnknown(t *testing.T) {
	p := capability.NewPermissive()
	dir := t.TempDir()
	a := filepath.Join(dir, "a.exe")
	b := filepath.Join(dir, "b.exe")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0o644))

	idA, err := p.Identity(a)
	require.NoError(t, err)
	idB, err := p.Identity(b)
	require.NoError(t, err)

	devA, inoA := idA.Pair()
	devB, inoB := idB.Pair()
	assert.Equal(t, [2]uint64{0, 0}, [2]uint64{devA, inoA})
	assert.Equal(t, [2]uint64{devA, inoA}, [2]uint64{devB, inoB})
	assert.False(t, idA.SameFile(idB), "equal sentinels must not imply the same file")
	assert.Equal(t, capability.Unknown, idA)
}

func TestPermissive_Ownership(t *testing.T) {
	p := capability.NewPermissive()
	info, err := os.Stat(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, capability.Ownership{}, p.Ownership(info))
	assert.Equal(t, capability.Ownership{}, p.Ownership(nil))
}

func TestPermissive_Defaults(t *testing.T) {
	p := capability.NewPermissive(capability.WithRegistry(nil), capability.WithFilesystem(nil))

	assert.Same(t, pathext.Default(), p.Registry())
	assert.Equal(t, platform.KindWindows, p.Kind())
}

func TestPermissive_HostFilesystem(t *testing.T) {
	p := capability.NewPermissive(capability.WithRegistry(pathext.Fixed(".exe")))
	dir := t.TempDir()
	tool := filepath.Join(dir, "tool.EXE")
	require.NoError(t, os.WriteFile(tool, []byte("x"), fs.FileMode(0o644)))

	assert.True(t, p.Executable(tool))
	assert.False(t, p.Executable(dir))
}
