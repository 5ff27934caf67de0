package platform

import "runtime"

// Kind represents the family of the host platform as far as filesystem
// capabilities are concerned.
type Kind int

const (
	// KindUnknown indicates the platform family is unknown or unspecified.
	KindUnknown Kind = iota
	// KindUnix indicates a platform with POSIX permission bits, ownership,
	// special files, and device/inode identity.
	KindUnix
	// KindWindows indicates a platform without those concepts, where
	// executability is decided by file extension.
	KindWindows
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindUnix:
		return "unix"
	case KindWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// ParseKind converts a name produced by Kind.String back into a Kind.
// Unrecognized names yield KindUnknown.
func ParseKind(name string) Kind {
	switch name {
	case "unix":
		return KindUnix
	case "windows":
		return KindWindows
	default:
		return KindUnknown
	}
}

// Current returns the Kind of the running process.
func Current() Kind {
	return kindOf(runtime.GOOS)
}

func kindOf(goos string) Kind {
	switch goos {
	case "windows":
		return KindWindows
	case "linux", "darwin", "freebsd", "openbsd", "netbsd", "dragonfly",
		"solaris", "illumos", "aix", "android", "ios", "hurd", "zos":
		return KindUnix
	default:
		return KindUnknown
	}
}
