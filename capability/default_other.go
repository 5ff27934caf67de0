//go:build !unix

package capability

import "github.com/jmgilman/go/errors"

// Default returns the provider for the host platform: Permissive on
// builds without Unix permission semantics.
func Default() Provider {
	return NewPermissive()
}

func posixProvider() (Provider, error) {
	return nil, errors.New(errors.CodeNotImplemented, "POSIX capabilities are not available on this platform")
}
