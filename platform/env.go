package platform

import (
	"os"
	"strings"
)

// Well-known environment signals consumed by sysfs.
const (
	// EnvPathExt lists executable suffixes separated by ';'.
	EnvPathExt = "PATHEXT"
	// EnvSystemRoot names the Windows installation directory.
	EnvSystemRoot = "SystemRoot"
	// EnvPath lists directories searched for commands.
	EnvPath = "PATH"
)

// Environment is a read-only view of environment variables.
type Environment interface {
	// LookupEnv retrieves the value of the named variable.
	// The boolean reports whether the variable is present.
	LookupEnv(key string) (string, bool)
}

// EnvironmentFunc adapts a function to the Environment interface.
type EnvironmentFunc func(key string) (string, bool)

// LookupEnv calls f(key).
func (f EnvironmentFunc) LookupEnv(key string) (string, bool) {
	return f(key)
}

// OS returns the environment of the running process.
func OS() Environment {
	return EnvironmentFunc(os.LookupEnv)
}

// MapEnv is a fixed Environment backed by a map.
type MapEnv struct {
	vars map[string]string
	fold bool
}

// Map returns an Environment containing a copy of vars.
// Keys are matched exactly.
func Map(vars map[string]string) *MapEnv {
	return newMapEnv(vars, false)
}

// MapFold returns an Environment containing a copy of vars whose keys
// are matched case-insensitively, the way Windows resolves variable names.
func MapFold(vars map[string]string) *MapEnv {
	return newMapEnv(vars, true)
}

func newMapEnv(vars map[string]string, fold bool) *MapEnv {
	m := &MapEnv{vars: make(map[string]string, len(vars)), fold: fold}
	for k, v := range vars {
		if fold {
			k = strings.ToUpper(k)
		}
		m.vars[k] = v
	}
	return m
}

// LookupEnv implements Environment.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	if m.fold {
		key = strings.ToUpper(key)
	}
	v, ok := m.vars[key]
	return v, ok
}

// Overlay returns an Environment that consults overrides before falling
// back to base. Empty override values are ignored.
func Overlay(base Environment, overrides map[string]string) Environment {
	return EnvironmentFunc(func(key string) (string, bool) {
		if v, ok := overrides[key]; ok && v != "" {
			return v, true
		}
		return base.LookupEnv(key)
	})
}
