// Package match suggests the closest known spelling for a misspelled name.
//
// It backs the "did you mean" part of generation diagnostics: unknown
// container names and sequence kinds are matched against the closed set of
// valid spellings by edit distance.
package match
