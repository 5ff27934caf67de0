// Package pathext derives the set of file extensions that mark a file as
// executable on platforms without an execute permission bit.
//
// The set comes from the PATHEXT environment signal, a ';'-separated list
// such as ".COM;.EXE;.BAT;.CMD". Entries are trimmed, empty entries are
// dropped, and a leading '.' is added where missing. When the signal is
// absent, or yields no usable entries, the registry falls back to
// DefaultExtensions rather than treating every file as non-executable.
//
// # Caching
//
// A Registry computes its set once, on first use, and never recomputes it.
// Concurrent first callers block until the single computation finishes and
// then all observe the same result. Default returns a process-wide Registry
// over the live environment; callers that want explicit wiring construct
// their own with New and pass it down.
//
//	reg := pathext.New(platform.OS())
//	reg.Match(`C:\tools\build.cmd`) // true
//	reg.Match(`C:\tools\README`)    // false
package pathext
