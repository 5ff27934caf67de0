package resolve

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jmgilman/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/sysfs/capability"
	"github.com/jmgilman/go/sysfs/pathext"
	"github.com/jmgilman/go/sysfs/platform"
	"github.com/jmgilman/go/sysfs/searchpath"
)

// Resolver finds executables by name.
type Resolver struct {
	caps        capability.Provider
	paths       searchpath.Provider
	env         platform.Environment
	registry    *pathext.Registry
	logger      *slog.Logger
	concurrency int
}

// registryProvider is implemented by providers that decide executability
// by extension.
type registryProvider interface {
	Registry() *pathext.Registry
}

// fileTyper is implemented by providers that can tell regular files from
// directories and other file types.
type fileTyper interface {
	IsRegular(path string) bool
}

// New creates a Resolver that checks candidates with caps and falls back to
// paths when PATH is unset.
//
// When caps carries its own extension registry, that registry is used for
// candidate expansion and WithRegistry is ignored, so expansion and the
// executable check always agree.
func New(caps capability.Provider, paths searchpath.Provider, opts ...Option) *Resolver {
	r := &Resolver{
		caps:        caps,
		paths:       paths,
		env:         platform.OS(),
		logger:      slog.New(slog.DiscardHandler),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	if rp, ok := caps.(registryProvider); ok {
		if reg := rp.Registry(); reg != nil {
			r.registry = reg
		}
	}
	if r.registry == nil {
		r.registry = pathext.Default()
	}
	return r
}

// Dirs returns the directories searched for commands, in order.
// PATH entries are used when PATH is set and non-empty, with empty entries
// meaning the current directory. Otherwise the search-path provider's
// executable search paths are used.
func (r *Resolver) Dirs() []string {
	value, ok := r.env.LookupEnv(platform.EnvPath)
	if !ok || value == "" {
		return r.paths.ExecutableSearchPaths()
	}
	dirs := filepath.SplitList(value)
	for i, dir := range dirs {
		if dir == "" {
			dirs[i] = "."
		}
	}
	return dirs
}

// Candidates returns the paths checked for name within dir, in order.
// When the provider decides executability by extension and name carries no
// registered extension, name is followed by name plus each registered
// extension.
func (r *Resolver) Candidates(dir, name string) []string {
	base := name
	if dir != "" {
		base = filepath.Join(dir, name)
	}
	if !r.expands() || r.registry.Match(name) {
		return []string{base}
	}

	exts := r.registry.Extensions()
	candidates := make([]string, 0, len(exts)+1)
	candidates = append(candidates, base)
	for _, ext := range exts {
		candidates = append(candidates, base+ext)
	}
	return candidates
}

// Find returns the path of the first executable candidate for name.
// Directories and other non-regular files are skipped even when the
// provider reports them executable.
//
// A name containing a path separator is checked as given, without
// searching. Returns an error with code NOT_FOUND when no candidate is
// executable and INVALID_INPUT when name is empty.
func (r *Resolver) Find(name string) (string, error) {
	if name == "" {
		return "", errors.New(errors.CodeInvalidInput, "command name is empty")
	}

	if r.hasSeparator(name) {
		for _, candidate := range r.Candidates("", name) {
			if r.runnable(candidate) {
				r.logger.Debug("resolved command", "name", name, "path", candidate)
				return candidate, nil
			}
		}
		return "", r.notFound(name, nil)
	}

	dirs := r.Dirs()
	for _, dir := range dirs {
		for _, candidate := range r.Candidates(dir, name) {
			if r.runnable(candidate) {
				r.logger.Debug("resolved command", "name", name, "path", candidate)
				return candidate, nil
			}
		}
	}
	return "", r.notFound(name, dirs)
}

// FindAll resolves names concurrently and returns the paths that were found,
// keyed by name. Names that cannot be resolved are omitted. The only error
// returned is the context's, if it is canceled before all lookups finish.
func (r *Resolver) FindAll(ctx context.Context, names []string) (map[string]string, error) {
	var mu sync.Mutex
	found := make(map[string]string, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := r.Find(name)
			if err != nil {
				return nil
			}
			mu.Lock()
			found[name] = path
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		code := errors.CodeInternal
		if errors.Is(err, context.DeadlineExceeded) {
			code = errors.CodeTimeout
		}
		return nil, errors.Wrap(err, code, "command resolution interrupted")
	}
	return found, nil
}

// runnable reports whether candidate is a regular file the provider
// considers executable.
func (r *Resolver) runnable(candidate string) bool {
	if ft, ok := r.caps.(fileTyper); ok && !ft.IsRegular(candidate) {
		return false
	}
	return r.caps.Executable(candidate)
}

func (r *Resolver) expands() bool {
	return r.caps.Kind() == platform.KindWindows
}

func (r *Resolver) hasSeparator(name string) bool {
	if r.expands() {
		return strings.ContainsAny(name, `/\`)
	}
	return strings.ContainsRune(name, '/')
}

func (r *Resolver) notFound(name string, dirs []string) errors.PlatformError {
	r.logger.Debug("command not found", "name", name, "dirs", dirs)
	err := errors.Newf(errors.CodeNotFound, "command not found: %s", name)
	return errors.WithContextMap(err, map[string]interface{}{
		"name": name,
		"dirs": dirs,
	})
}
