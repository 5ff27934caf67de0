// Package platform identifies the host platform family and abstracts the
// process environment that the rest of sysfs reads its configuration
// signals from.
//
// Components never call os.Getenv directly. They accept an Environment so
// that callers can thread a fixed environment through for tests, embedded
// shells, or configuration overrides:
//
//	env := platform.Map(map[string]string{"PATHEXT": ".EXE;.CMD"})
//	reg := pathext.New(env)
//
// OS returns the live process environment.
package platform
