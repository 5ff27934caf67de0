package capability

import "fmt"

// Identity identifies a file by device and inode.
//
// The zero Identity is Unknown. Unknown identities expose the pair (0, 0)
// but never compare as the same file, so cycle detection and self-copy
// guards stay correct on platforms without identity tracking.
type Identity struct {
	device uint64
	inode  uint64
	known  bool
}

// Unknown is the Identity reported where the platform does not track
// device and inode numbers.
var Unknown = Identity{}

// NewIdentity returns a Known identity for the given device and inode.
func NewIdentity(device, inode uint64) Identity {
	return Identity{device: device, inode: inode, known: true}
}

// Known reports whether the identity was populated from OS metadata.
func (id Identity) Known() bool {
	return id.known
}

// Device returns the device number, or 0 if the identity is unknown.
func (id Identity) Device() uint64 {
	return id.device
}

// Inode returns the inode number, or 0 if the identity is unknown.
func (id Identity) Inode() uint64 {
	return id.inode
}

// Pair returns the raw (device, inode) pair. Unknown identities return (0, 0).
// Callers comparing pairs directly must check Known first.
func (id Identity) Pair() (uint64, uint64) {
	return id.device, id.inode
}

// SameFile reports whether id and other are known to denote the same file.
// It returns false when either identity is unknown.
func (id Identity) SameFile(other Identity) bool {
	return id.known && other.known &&
		id.device == other.device && id.inode == other.inode
}

// String returns "device:inode", or "unknown".
func (id Identity) String() string {
	if !id.known {
		return "unknown"
	}
	return fmt.Sprintf("%d:%d", id.device, id.inode)
}
