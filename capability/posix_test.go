//go:build unix

package capability_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/sysfs/capability"
	"github.com/jmgilman/go/sysfs/captest"
	"github.com/jmgilman/go/sysfs/internal/ioerr"
	"github.com/jmgilman/go/sysfs/platform"
)

func TestPOSIX_Conformance(t *testing.T) {
	captest.TestSuite(t, func() capability.Provider {
		return capability.NewPOSIX()
	}, captest.POSIXConfig())
}

func TestPOSIX_IdentityFollowsSymlinks(t *testing.T) {
	p := capability.NewPOSIX()
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(target, nil, 0o644))
	require.NoError(t, os.Symlink(target, link))

	idTarget, err := p.Identity(target)
	require.NoError(t, err)
	idLink, err := p.Identity(link)
	require.NoError(t, err)

	assert.True(t, idTarget.SameFile(idLink))
	assert.NotEqual(t, "unknown", idTarget.String())
}

func TestPOSIX_IdentityError(t *testing.T) {
	p := capability.NewPOSIX()
	missing := filepath.Join(t.TempDir(), "gone")

	id, err := p.Identity(missing)
	require.Error(t, err)
	assert.False(t, id.Known())

	var perr errors.PlatformError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, errors.CodeNotFound, perr.Code())
	assert.Equal(t, missing, perr.Context()[ioerr.KeyPath])
	assert.Equal(t, "identity", perr.Context()[ioerr.KeyOp])
	assert.False(t, errors.IsRetryable(err))
}

func TestPOSIX_IsRegular(t *testing.T) {
	p := capability.NewPOSIX()
	dir := t.TempDir()
	file := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(file, nil, 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "bin"), 0o755))

	assert.True(t, p.IsRegular(file))
	assert.True(t, p.Executable(filepath.Join(dir, "bin")))
	assert.False(t, p.IsRegular(filepath.Join(dir, "bin")))
	assert.False(t, p.IsRegular(os.DevNull))
	assert.False(t, p.IsRegular(filepath.Join(dir, "missing")))
}

func TestPOSIX_Kind(t *testing.T) {
	assert.Equal(t, platform.KindUnix, capability.NewPOSIX().Kind())
	assert.Equal(t, platform.KindUnix, capability.Default().Kind())
}

func TestForKind(t *testing.T) {
	p, err := capability.ForKind(platform.KindWindows)
	require.NoError(t, err)
	assert.IsType(t, &capability.Permissive{}, p)

	p, err = capability.ForKind(platform.KindUnix)
	require.NoError(t, err)
	assert.IsType(t, &capability.POSIX{}, p)

	p, err = capability.ForKind(platform.KindUnknown)
	require.NoError(t, err)
	assert.Equal(t, platform.KindUnix, p.Kind())
}
