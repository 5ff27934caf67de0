package pathext

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/jmgilman/go/sysfs/platform"
)

const (
	// Delimiter separates entries in the PATHEXT signal.
	Delimiter = ";"
	// Separator begins every normalized extension.
	Separator = "."
)

// DefaultExtensions is the fallback set used when PATHEXT is absent or empty.
var DefaultExtensions = []string{".COM", ".EXE", ".BAT", ".CMD"}

// Registry holds a lazily computed, immutable extension set.
// A Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	env  platform.Environment
	once sync.Once
	exts []string
}

// New creates a Registry that reads PATHEXT from env on first use.
func New(env platform.Environment) *Registry {
	return &Registry{env: env}
}

// Fixed creates a Registry whose set is exts, normalized as if read from
// PATHEXT. An empty result falls back to DefaultExtensions.
func Fixed(exts ...string) *Registry {
	r := &Registry{}
	r.once.Do(func() {
		r.exts = orDefault(Parse(strings.Join(exts, Delimiter)))
	})
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return New(platform.OS())
})

// Default returns the process-wide Registry backed by the process environment.
func Default() *Registry {
	return defaultRegistry()
}

// Extensions returns the extension set in signal order.
// The returned slice is a copy and may be modified by the caller.
func (r *Registry) Extensions() []string {
	return slices.Clone(r.load())
}

// Contains reports whether ext is in the set, ignoring case.
// ext must include the leading separator.
func (r *Registry) Contains(ext string) bool {
	if ext == "" {
		return false
	}
	for _, known := range r.load() {
		if strings.EqualFold(known, ext) {
			return true
		}
	}
	return false
}

// Match reports whether the extension of path is in the set.
// Paths without an extension never match.
func (r *Registry) Match(path string) bool {
	return r.Contains(Extension(path))
}

func (r *Registry) load() []string {
	r.once.Do(func() {
		r.exts = compute(r.env)
	})
	return r.exts
}

func compute(env platform.Environment) []string {
	if env == nil {
		return slices.Clone(DefaultExtensions)
	}
	value, ok := env.LookupEnv(platform.EnvPathExt)
	if !ok {
		return slices.Clone(DefaultExtensions)
	}
	return orDefault(Parse(value))
}

func orDefault(exts []string) []string {
	if len(exts) == 0 {
		return slices.Clone(DefaultExtensions)
	}
	return exts
}

// Parse splits a PATHEXT value into normalized extensions.
// Whitespace around entries is trimmed, empty entries are dropped, and a
// leading separator is prepended where missing. Case is preserved.
func Parse(value string) []string {
	exts := make([]string, 0, strings.Count(value, Delimiter)+1)
	for _, entry := range strings.Split(value, Delimiter) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.HasPrefix(entry, Separator) {
			entry = Separator + entry
		}
		exts = append(exts, entry)
	}
	return exts
}

// Extension returns the extension of the final element of path, including
// the leading separator. Names without a '.', and names whose only '.' is
// the first character (".profile"), have no extension. A trailing '.'
// ("foo.") yields the extension ".".
//
// Both '/' and '\' are treated as element separators so that Windows paths
// are handled the same way on every host.
func Extension(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if base == "" {
		base = filepath.Base(path)
	}
	i := strings.LastIndex(base, Separator)
	if i <= 0 {
		return ""
	}
	return base[i:]
}
