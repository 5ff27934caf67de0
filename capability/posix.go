//go:build unix

package capability

import (
	"io/fs"
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/sysfs/internal/ioerr"
	"github.com/jmgilman/go/sysfs/platform"
)

// POSIX implements Provider using the host's permission bits, file modes,
// ownership, and device/inode numbers.
type POSIX struct{}

// NewPOSIX creates a POSIX provider.
func NewPOSIX() *POSIX {
	return &POSIX{}
}

// Readable reports whether access(2) grants read permission.
func (p *POSIX) Readable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}

// Writable reports whether access(2) grants write permission.
func (p *POSIX) Writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

// Executable reports whether access(2) grants execute permission.
// Directories with search permission are executable, as with test -x.
func (p *POSIX) Executable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}

// IsRegular reports whether path is a regular file, following symbolic links.
func (p *POSIX) IsRegular(path string) bool {
	m, ok := mode(path)
	return ok && m.IsRegular()
}

// IsBlockDevice reports whether path is a block device.
func (p *POSIX) IsBlockDevice(path string) bool {
	m, ok := mode(path)
	return ok && m&fs.ModeDevice != 0 && m&fs.ModeCharDevice == 0
}

// IsCharDevice reports whether path is a character device.
func (p *POSIX) IsCharDevice(path string) bool {
	m, ok := mode(path)
	return ok && m&fs.ModeCharDevice != 0
}

// IsFIFO reports whether path is a named pipe.
func (p *POSIX) IsFIFO(path string) bool {
	m, ok := mode(path)
	return ok && m&fs.ModeNamedPipe != 0
}

// IsSocket reports whether path is a Unix domain socket.
func (p *POSIX) IsSocket(path string) bool {
	m, ok := mode(path)
	return ok && m&fs.ModeSocket != 0
}

// IsSetgid reports whether path has the setgid bit.
func (p *POSIX) IsSetgid(path string) bool {
	m, ok := mode(path)
	return ok && m&fs.ModeSetgid != 0
}

// IsSetuid reports whether path has the setuid bit.
func (p *POSIX) IsSetuid(path string) bool {
	m, ok := mode(path)
	return ok && m&fs.ModeSetuid != 0
}

// IsSticky reports whether path has the sticky bit.
func (p *POSIX) IsSticky(path string) bool {
	m, ok := mode(path)
	return ok && m&fs.ModeSticky != 0
}

// Identity returns the device and inode of path, following symbolic links.
func (p *POSIX) Identity(path string) (Identity, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Unknown, ioerr.Wrap(&fs.PathError{Op: "stat", Path: path, Err: err}, "identity", path)
	}
	return NewIdentity(uint64(st.Dev), uint64(st.Ino)), nil //nolint:unconvert // Dev and Ino widths vary by platform
}

// Ownership returns the uid and gid recorded in info.
// Returns the zero Ownership if info does not carry a syscall.Stat_t.
func (p *POSIX) Ownership(info fs.FileInfo) Ownership {
	if info == nil {
		return Ownership{}
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok || st == nil {
		return Ownership{}
	}
	return Ownership{UID: st.Uid, GID: st.Gid}
}

// Kind returns platform.KindUnix.
func (p *POSIX) Kind() platform.Kind {
	return platform.KindUnix
}

// mode stats path following symbolic links.
func mode(path string) (fs.FileMode, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	return info.Mode(), true
}

var _ Provider = (*POSIX)(nil)
