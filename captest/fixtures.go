package captest

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file with the given mode under dir and returns its path.
func writeFile(t *testing.T, dir, name string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("fixture\n"), perm); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}
	// WriteFile is subject to umask; set the exact bits.
	if err := os.Chmod(path, perm); err != nil {
		t.Fatalf("Chmod(%s): setup failed: %v", name, err)
	}
	return path
}

// mkdir creates a directory under dir and returns its path.
func mkdir(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("Mkdir(%s): setup failed: %v", name, err)
	}
	return path
}

// setMode applies mode to path and skips the test if the host silently
// dropped any of the requested bits.
func setMode(t *testing.T, path string, mode os.FileMode) {
	t.Helper()
	if err := os.Chmod(path, mode); err != nil {
		t.Skipf("Chmod(%s, %v) not permitted: %v", path, mode, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat(%s): %v", path, err)
	}
	if info.Mode()&mode != mode {
		t.Skipf("host dropped mode bits: requested %v, got %v", mode, info.Mode())
	}
}
