package capability

import (
	"io/fs"

	"github.com/jmgilman/go/sysfs/pathext"
	"github.com/jmgilman/go/sysfs/platform"
)

// Permissive implements Provider for platforms without Unix permission
// bits, ownership, special files, or inode identity.
//
// Readable and Writable are always true: the filesystem layer is assumed
// fully permissive and access failures surface when the file is opened.
// Executable is true only for regular files whose extension is in the
// registry; names without an extension are never executable, regardless
// of content.
type Permissive struct {
	registry *pathext.Registry
	fsys     statFS
}

// NewPermissive creates a Permissive provider.
func NewPermissive(opts ...Option) *Permissive {
	p := &Permissive{
		registry: pathext.Default(),
		fsys:     hostFS{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Registry returns the extension registry consulted by Executable.
func (p *Permissive) Registry() *pathext.Registry {
	return p.registry
}

// Readable always returns true.
func (p *Permissive) Readable(string) bool { return true }

// Writable always returns true.
func (p *Permissive) Writable(string) bool { return true }

// Executable reports whether path is a regular file with a registered
// executable extension.
func (p *Permissive) Executable(path string) bool {
	ext := pathext.Extension(path)
	if ext == "" {
		return false
	}
	return p.IsRegular(path) && p.registry.Contains(ext)
}

// IsRegular reports whether path is a regular file.
func (p *Permissive) IsRegular(path string) bool {
	info, err := p.fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsBlockDevice always returns false.
func (p *Permissive) IsBlockDevice(string) bool { return false }

// IsCharDevice always returns false.
func (p *Permissive) IsCharDevice(string) bool { return false }

// IsFIFO always returns false.
func (p *Permissive) IsFIFO(string) bool { return false }

// IsSocket always returns false.
func (p *Permissive) IsSocket(string) bool { return false }

// IsSetgid always returns false.
func (p *Permissive) IsSetgid(string) bool { return false }

// IsSetuid always returns false.
func (p *Permissive) IsSetuid(string) bool { return false }

// IsSticky always returns false.
func (p *Permissive) IsSticky(string) bool { return false }

// Identity always returns Unknown and a nil error.
func (p *Permissive) Identity(string) (Identity, error) {
	return Unknown, nil
}

// Ownership always returns the zero Ownership.
func (p *Permissive) Ownership(fs.FileInfo) Ownership {
	return Ownership{}
}

// Kind returns platform.KindWindows.
func (p *Permissive) Kind() platform.Kind {
	return platform.KindWindows
}

var _ Provider = (*Permissive)(nil)
