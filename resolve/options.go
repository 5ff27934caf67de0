package resolve

import (
	"log/slog"

	"github.com/jmgilman/go/sysfs/pathext"
	"github.com/jmgilman/go/sysfs/platform"
)

// DefaultConcurrency bounds the number of names FindAll resolves at once.
const DefaultConcurrency = 8

// Option configures a Resolver.
type Option func(*Resolver)

// WithEnvironment sets the environment PATH is read from.
func WithEnvironment(env platform.Environment) Option {
	return func(r *Resolver) {
		if env != nil {
			r.env = env
		}
	}
}

// WithRegistry sets the extension registry used to expand bare names.
// It has no effect when the capability provider carries its own registry.
func WithRegistry(reg *pathext.Registry) Option {
	return func(r *Resolver) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// WithLogger sets the logger used for debug tracing of lookups.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithConcurrency bounds the number of concurrent lookups in FindAll.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}
