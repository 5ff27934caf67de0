package captest

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/sysfs/capability"
)

// TestSpecialFiles verifies device, FIFO, socket, and mode-bit predicates.
// Fixtures the host cannot create are skipped individually.
func TestSpecialFiles(t *testing.T, p capability.Provider, config Config) {
	t.Run("RegularFile", func(t *testing.T) {
		file := writeFile(t, t.TempDir(), "plain.txt", 0o644)
		got := capability.Query(p, file)
		if got.BlockDevice || got.CharDevice || got.FIFO || got.Socket ||
			got.Setgid || got.Setuid || got.Sticky {
			t.Errorf("Query(%s) = %+v, want no special predicates", file, got)
		}
	})

	t.Run("CharDevice", func(t *testing.T) {
		config.skip(t, "SpecialFiles/CharDevice")
		if _, err := os.Stat(os.DevNull); err != nil {
			t.Skipf("%s not present: %v", os.DevNull, err)
		}
		if got := p.IsCharDevice(os.DevNull); got != config.SpecialFiles {
			t.Errorf("IsCharDevice(%s) = %v, want %v", os.DevNull, got, config.SpecialFiles)
		}
		if p.IsBlockDevice(os.DevNull) {
			t.Errorf("IsBlockDevice(%s) = true, want false", os.DevNull)
		}
	})

	t.Run("FIFO", func(t *testing.T) {
		config.skip(t, "SpecialFiles/FIFO")
		path := filepath.Join(t.TempDir(), "pipe")
		if err := mkfifo(path); err != nil {
			t.Skipf("mkfifo not supported: %v", err)
		}
		if got := p.IsFIFO(path); got != config.SpecialFiles {
			t.Errorf("IsFIFO(%s) = %v, want %v", path, got, config.SpecialFiles)
		}
		if p.IsSocket(path) {
			t.Errorf("IsSocket(%s) = true, want false", path)
		}
	})

	t.Run("Socket", func(t *testing.T) {
		config.skip(t, "SpecialFiles/Socket")
		// Socket paths have a short length limit; keep the name tiny.
		dir, err := os.MkdirTemp("", "cap")
		if err != nil {
			t.Fatalf("MkdirTemp: %v", err)
		}
		t.Cleanup(func() { _ = os.RemoveAll(dir) })

		path := filepath.Join(dir, "s")
		ln, err := net.Listen("unix", path)
		if err != nil {
			t.Skipf("unix sockets not supported: %v", err)
		}
		t.Cleanup(func() { _ = ln.Close() })

		if got := p.IsSocket(path); got != config.SpecialFiles {
			t.Errorf("IsSocket(%s) = %v, want %v", path, got, config.SpecialFiles)
		}
		if p.IsFIFO(path) {
			t.Errorf("IsFIFO(%s) = true, want false", path)
		}
	})

	t.Run("Setuid", func(t *testing.T) {
		config.skip(t, "SpecialFiles/Setuid")
		path := writeFile(t, t.TempDir(), "suid", 0o755)
		setMode(t, path, 0o755|os.ModeSetuid)
		if got := p.IsSetuid(path); got != config.SpecialFiles {
			t.Errorf("IsSetuid(%s) = %v, want %v", path, got, config.SpecialFiles)
		}
		if p.IsSetgid(path) {
			t.Errorf("IsSetgid(%s) = true, want false", path)
		}
	})

	t.Run("Setgid", func(t *testing.T) {
		config.skip(t, "SpecialFiles/Setgid")
		path := writeFile(t, t.TempDir(), "sgid", 0o755)
		setMode(t, path, 0o755|os.ModeSetgid)
		if got := p.IsSetgid(path); got != config.SpecialFiles {
			t.Errorf("IsSetgid(%s) = %v, want %v", path, got, config.SpecialFiles)
		}
		if p.IsSetuid(path) {
			t.Errorf("IsSetuid(%s) = true, want false", path)
		}
	})

	t.Run("Sticky", func(t *testing.T) {
		config.skip(t, "SpecialFiles/Sticky")
		path := mkdir(t, t.TempDir(), "shared")
		setMode(t, path, 0o777|os.ModeSticky)
		if got := p.IsSticky(path); got != config.SpecialFiles {
			t.Errorf("IsSticky(%s) = %v, want %v", path, got, config.SpecialFiles)
		}
	})

	t.Run("MissingPath", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")
		if p.IsCharDevice(missing) || p.IsFIFO(missing) || p.IsSticky(missing) {
			t.Errorf("special predicates true for missing path %s", missing)
		}
	})
}
