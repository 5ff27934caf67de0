//go:build unix

package capability

// Default returns the provider for the host platform: POSIX on Unix builds.
func Default() Provider {
	return NewPOSIX()
}

func posixProvider() (Provider, error) {
	return NewPOSIX(), nil
}
