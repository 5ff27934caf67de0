package capability

import (
	"io/fs"
	"os"

	"github.com/jmgilman/go/fs/core"

	"github.com/jmgilman/go/sysfs/pathext"
)

// Option configures a Permissive provider.
type Option func(*Permissive)

// WithRegistry sets the extension registry consulted by Executable.
// Defaults to pathext.Default().
func WithRegistry(reg *pathext.Registry) Option {
	return func(p *Permissive) {
		if reg != nil {
			p.registry = reg
		}
	}
}

// WithFilesystem evaluates paths against fsys instead of the host filesystem.
// This allows capability queries over in-memory or chrooted views.
func WithFilesystem(fsys core.ReadFS) Option {
	return func(p *Permissive) {
		if fsys != nil {
			p.fsys = fsys
		}
	}
}

// statFS is the subset of core.ReadFS the providers need.
type statFS interface {
	Stat(name string) (fs.FileInfo, error)
}

// hostFS stats paths on the host filesystem without rewriting them,
// so drive letters and UNC paths reach the OS untouched.
type hostFS struct{}

func (hostFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
