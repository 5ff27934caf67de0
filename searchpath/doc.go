// Package searchpath lists the directories a shell searches for commands
// when no explicit PATH is configured.
//
// Two lists are exposed separately: ExecutableSearchPaths seeds ordinary
// command lookup, and StandardUtilityPaths locates the standard utilities
// (what `command -p` uses). On Windows both are currently derived from the
// SystemRoot signal and therefore identical; they remain separate
// operations so callers do not depend on that coincidence.
//
// Neither operation fails. A missing configuration signal yields an empty
// list.
package searchpath
