package capability

import (
	"io/fs"

	"github.com/jmgilman/go/sysfs/platform"
)

// Provider exposes per-path capability predicates.
//
// Predicates never fail: a path that does not exist, or a concept the
// platform lacks, yields false.
type Provider interface {
	// Readable reports whether the current process may read path.
	Readable(path string) bool

	// Writable reports whether the current process may write path.
	Writable(path string) bool

	// Executable reports whether path may be executed as a command.
	Executable(path string) bool

	// IsBlockDevice reports whether path exists and is a block device.
	IsBlockDevice(path string) bool

	// IsCharDevice reports whether path exists and is a character device.
	IsCharDevice(path string) bool

	// IsFIFO reports whether path exists and is a named pipe.
	IsFIFO(path string) bool

	// IsSocket reports whether path exists and is a Unix domain socket.
	IsSocket(path string) bool

	// IsSetgid reports whether path exists and has the setgid bit.
	IsSetgid(path string) bool

	// IsSetuid reports whether path exists and has the setuid bit.
	IsSetuid(path string) bool

	// IsSticky reports whether path exists and has the sticky bit.
	IsSticky(path string) bool

	// Identity returns the device and inode of path.
	// Providers without identity tracking return an Identity that is not
	// Known and a nil error for every path.
	Identity(path string) (Identity, error)

	// Ownership returns the owning user and group recorded in info.
	// Providers without an ownership model return the zero Ownership.
	Ownership(info fs.FileInfo) Ownership

	// Kind returns the platform family whose semantics the provider implements.
	Kind() platform.Kind
}

// Result is a snapshot of every boolean predicate for one path.
type Result struct {
	Readable    bool `json:"readable" yaml:"readable"`
	Writable    bool `json:"writable" yaml:"writable"`
	Executable  bool `json:"executable" yaml:"executable"`
	BlockDevice bool `json:"block_device" yaml:"block_device"`
	CharDevice  bool `json:"char_device" yaml:"char_device"`
	FIFO        bool `json:"fifo" yaml:"fifo"`
	Socket      bool `json:"socket" yaml:"socket"`
	Setgid      bool `json:"setgid" yaml:"setgid"`
	Setuid      bool `json:"setuid" yaml:"setuid"`
	Sticky      bool `json:"sticky" yaml:"sticky"`
}

// Query evaluates every predicate of p against path.
// The predicates are evaluated independently, so the result is not an
// atomic view of the file.
func Query(p Provider, path string) Result {
	return Result{
		Readable:    p.Readable(path),
		Writable:    p.Writable(path),
		Executable:  p.Executable(path),
		BlockDevice: p.IsBlockDevice(path),
		CharDevice:  p.IsCharDevice(path),
		FIFO:        p.IsFIFO(path),
		Socket:      p.IsSocket(path),
		Setgid:      p.IsSetgid(path),
		Setuid:      p.IsSetuid(path),
		Sticky:      p.IsSticky(path),
	}
}

// Ownership is the owning user and group of a file.
type Ownership struct {
	UID uint32 `json:"uid" yaml:"uid"`
	GID uint32 `json:"gid" yaml:"gid"`
}
