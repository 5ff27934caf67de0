package searchpath

import (
	"slices"
	"strings"

	"github.com/jmgilman/go/sysfs/platform"
)

// Provider enumerates default command directories.
type Provider interface {
	// ExecutableSearchPaths returns directories searched for commands, in order.
	ExecutableSearchPaths() []string

	// StandardUtilityPaths returns directories holding the standard utilities, in order.
	StandardUtilityPaths() []string
}

// SystemDir is the subdirectory of SystemRoot holding system binaries.
const SystemDir = "System32"

// Windows derives search paths from the SystemRoot signal.
type Windows struct {
	env platform.Environment
}

// NewWindows creates a Windows provider reading SystemRoot from env.
func NewWindows(env platform.Environment) *Windows {
	if env == nil {
		env = platform.OS()
	}
	return &Windows{env: env}
}

// ExecutableSearchPaths returns [SystemRoot\System32], or an empty list
// when SystemRoot is unset. A SystemRoot set to the empty string is treated
// as unset rather than producing a relative "System32" entry.
func (w *Windows) ExecutableSearchPaths() []string {
	return w.systemPaths()
}

// StandardUtilityPaths returns [SystemRoot\System32], or an empty list
// when SystemRoot is unset. Windows has no separate location for the
// standard utilities.
func (w *Windows) StandardUtilityPaths() []string {
	return w.systemPaths()
}

func (w *Windows) systemPaths() []string {
	paths := []string{}
	if dir, ok := w.systemDir(); ok {
		paths = append(paths, dir)
	}
	return paths
}

func (w *Windows) systemDir() (string, bool) {
	root, ok := w.env.LookupEnv(platform.EnvSystemRoot)
	if !ok || root == "" {
		return "", false
	}
	trimmed := strings.TrimRight(root, `\/`)
	if trimmed == "" {
		return `\` + SystemDir, true
	}
	return trimmed + `\` + SystemDir, true
}

// Unix returns the conventional Unix command directories.
type Unix struct{}

// NewUnix creates a Unix provider.
func NewUnix() *Unix {
	return &Unix{}
}

var (
	unixExecutablePaths = []string{
		"/usr/local/sbin",
		"/usr/local/bin",
		"/usr/sbin",
		"/usr/bin",
		"/sbin",
		"/bin",
	}

	// Matches the POSIX _CS_PATH value on common C libraries.
	unixUtilityPaths = []string{"/bin", "/usr/bin"}
)

// ExecutableSearchPaths returns the conventional sbin and bin directories.
func (u *Unix) ExecutableSearchPaths() []string {
	return slices.Clone(unixExecutablePaths)
}

// StandardUtilityPaths returns the directories holding the POSIX utilities.
func (u *Unix) StandardUtilityPaths() []string {
	return slices.Clone(unixUtilityPaths)
}

// ForKind returns the provider for kind, reading signals from env.
// KindUnknown selects the host's provider.
func ForKind(kind platform.Kind, env platform.Environment) Provider {
	switch kind {
	case platform.KindWindows:
		return NewWindows(env)
	case platform.KindUnix:
		return NewUnix()
	default:
		return ForKind(hostKind(), env)
	}
}

// Default returns the provider for the host platform over the process environment.
func Default() Provider {
	return ForKind(hostKind(), platform.OS())
}

func hostKind() platform.Kind {
	if k := platform.Current(); k == platform.KindWindows {
		return k
	}
	return platform.KindUnix
}

var (
	_ Provider = (*Windows)(nil)
	_ Provider = (*Unix)(nil)
)
