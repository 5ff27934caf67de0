package capability

import "github.com/jmgilman/go/sysfs/platform"

// ForKind returns a provider implementing the semantics of kind.
// KindUnknown selects Default. Options apply to the Permissive variant only.
//
// Requesting KindUnix on a build without POSIX support returns an error
// with code NOT_IMPLEMENTED.
func ForKind(kind platform.Kind, opts ...Option) (Provider, error) {
	switch kind {
	case platform.KindWindows:
		return NewPermissive(opts...), nil
	case platform.KindUnix:
		return posixProvider()
	default:
		if platform.Current() == platform.KindUnix {
			return posixProvider()
		}
		return NewPermissive(opts...), nil
	}
}
