// Package capability answers per-path questions a shell asks while
// resolving commands and filtering globs: can this path be read, written,
// or executed; is it a device, FIFO, or socket; does it carry the setuid,
// setgid, or sticky bit; and what identifies it uniquely.
//
// # Variants
//
// Platforms disagree on which of these questions are meaningful. Rather
// than branch on the operating system at every call site, the package
// offers one Provider implementation per platform family and picks the
// right one once, in Default:
//
//   - POSIX: real access(2) checks, mode bits, and device/inode identity.
//     Available on Unix builds only.
//   - Permissive: for platforms without a permission model. Read and write
//     are always allowed, executability is decided by file extension, and
//     every special-file predicate is false. Available on every build.
//
// # Honesty
//
// A predicate whose concept does not exist on the platform returns false;
// it is never synthesized as true. Identity follows the same rule: the
// permissive variant reports an Identity that is not Known, and two unknown
// identities are never the same file, even though both expose the pair
// (0, 0).
//
//	id1, _ := caps.Identity(src)
//	id2, _ := caps.Identity(dst)
//	if id1.SameFile(id2) {
//	    return errors.New(errors.CodeConflict, "source and destination are the same file")
//	}
//
// # Concurrency
//
// Providers hold no mutable state beyond the extension registry, which is
// itself safe for concurrent use. Results describe the filesystem at the
// time of the call and may be stale by the time they are returned.
package capability
