// Package diagnostic provides structured errors and warnings for wrapper
// generation.
//
// Every failure the generator can produce is a generation-time diagnostic:
// malformed directives, unsupported sequence shapes, unknown container names.
// Generation aborts on any error diagnostic and writes no output at all, so
// generated code itself carries no error paths.
package diagnostic
