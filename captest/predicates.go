package captest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/sysfs/capability"
)

// TestMissingPath verifies predicates on a path that does not exist.
func TestMissingPath(t *testing.T, p capability.Provider, config Config) {
	missing := filepath.Join(t.TempDir(), "does-not-exist.exe")

	got := capability.Query(p, missing)
	want := capability.Result{
		Readable: !config.PermissionModel,
		Writable: !config.PermissionModel,
	}
	if got != want {
		t.Errorf("Query(%s) = %+v, want %+v", missing, got, want)
	}
}

// TestAccess verifies Readable and Writable on an ordinary file.
func TestAccess(t *testing.T, p capability.Provider, config Config) {
	dir := t.TempDir()
	file := writeFile(t, dir, "data.txt", 0o644)

	if !p.Readable(file) {
		t.Errorf("Readable(%s) = false, want true", file)
	}
	if !p.Writable(file) {
		t.Errorf("Writable(%s) = false, want true", file)
	}
	if !p.Readable(dir) {
		t.Errorf("Readable(%s) = false, want true", dir)
	}

	if config.PermissionModel && os.Getuid() != 0 {
		locked := writeFile(t, dir, "locked.txt", 0o000)
		if p.Readable(locked) {
			t.Errorf("Readable(%s) = true for mode 0000, want false", locked)
		}
		if p.Writable(locked) {
			t.Errorf("Writable(%s) = true for mode 0000, want false", locked)
		}
	}
}

// TestExecutable verifies the executable policy for files and directories.
func TestExecutable(t *testing.T, p capability.Provider, config Config) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		path      string
		extension bool
		posix     bool
	}{
		{"ExtensionAndModeBits", writeFile(t, dir, "tool.exe", 0o755), true, true},
		{"UpperCaseExtension", writeFile(t, dir, "TOOL2.EXE", 0o644), true, false},
		{"ExtensionlessScript", writeFile(t, dir, "script", 0o755), false, true},
		{"UnregisteredExtension", writeFile(t, dir, "notes.txt", 0o644), false, false},
		{"DotFile", writeFile(t, dir, ".exe", 0o644), false, false},
		{"DirectoryWithExtension", mkdir(t, dir, "bin.exe"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.skip(t, "Executable/"+tt.name)
			want := tt.posix
			if config.ExtensionExecutable {
				want = tt.extension
			}
			if got := p.Executable(tt.path); got != want {
				t.Errorf("Executable(%s) = %v, want %v", tt.path, got, want)
			}
		})
	}
}
