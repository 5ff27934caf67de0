// Package captest provides a conformance test suite for capability.Provider
// implementations.
//
// The suite checks the behavioral contract every provider must honor (missing
// paths are never special, unknown identities never match, predicates the
// platform lacks stay false) while adapting to documented differences between
// variants through Config.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    captest.TestSuite(t, func() capability.Provider {
//	        return myprovider.New()
//	    }, captest.POSIXConfig())
//	}
//
// Providers under test must evaluate paths on the host filesystem; fixtures
// are created under t.TempDir(). Providers that decide executability by
// extension must recognize ".exe" and must not recognize ".txt".
package captest

import (
	"testing"

	"github.com/jmgilman/go/sysfs/capability"
)

// Config describes which capabilities the provider under test supports.
type Config struct {
	// PermissionModel indicates Readable and Writable perform real access
	// checks. When false they must be true for every path.
	PermissionModel bool

	// ExtensionExecutable indicates executability is decided by file
	// extension rather than permission bits.
	ExtensionExecutable bool

	// SpecialFiles indicates the provider detects devices, FIFOs, sockets,
	// and setuid/setgid/sticky bits. When false those predicates must be
	// false for every path.
	SpecialFiles bool

	// IdentityTracking indicates Identity is populated from OS metadata.
	IdentityTracking bool

	// OwnershipModel indicates Ownership reflects real uid/gid values.
	OwnershipModel bool

	// SkipTests lists specific test names to skip.
	// Format: "Group/SubTest" (e.g., "SpecialFiles/Socket").
	SkipTests []string
}

// PermissiveConfig returns configuration for providers without a
// permission model (capability.Permissive).
func PermissiveConfig() Config {
	return Config{ExtensionExecutable: true}
}

// POSIXConfig returns configuration for providers with full Unix
// semantics (capability.POSIX).
func POSIXConfig() Config {
	return Config{
		PermissionModel:  true,
		SpecialFiles:     true,
		IdentityTracking: true,
		OwnershipModel:   true,
	}
}

func (c Config) skip(t *testing.T, name string) {
	t.Helper()
	for _, s := range c.SkipTests {
		if s == name {
			t.Skip("Skipped by provider configuration")
		}
	}
}

// TestSuite runs every conformance group against providers returned by newProvider.
// A fresh provider is requested for each group.
func TestSuite(t *testing.T, newProvider func() capability.Provider, config Config) {
	t.Run("MissingPath", func(t *testing.T) {
		config.skip(t, "MissingPath")
		TestMissingPath(t, newProvider(), config)
	})
	t.Run("Access", func(t *testing.T) {
		config.skip(t, "Access")
		TestAccess(t, newProvider(), config)
	})
	t.Run("Executable", func(t *testing.T) {
		config.skip(t, "Executable")
		TestExecutable(t, newProvider(), config)
	})
	t.Run("SpecialFiles", func(t *testing.T) {
		config.skip(t, "SpecialFiles")
		TestSpecialFiles(t, newProvider(), config)
	})
	t.Run("Identity", func(t *testing.T) {
		config.skip(t, "Identity")
		TestIdentity(t, newProvider(), config)
	})
	t.Run("Ownership", func(t *testing.T) {
		config.skip(t, "Ownership")
		TestOwnership(t, newProvider(), config)
	})
}
