// Package resolve locates commands the way a shell does: by walking the
// directories of PATH, or the platform's default search paths when PATH is
// unset, and asking a capability.Provider which candidate is executable.
//
// On platforms where executability is decided by extension, a bare name
// such as "git" is expanded with every registered extension ("git.COM",
// "git.EXE", ...) in registry order.
//
//	r := resolve.New(capability.Default(), searchpath.Default())
//	path, err := r.Find("git")
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // command not found
//	}
//
// A Resolver holds no mutable state and may be shared by goroutines;
// FindAll resolves many names concurrently.
package resolve
