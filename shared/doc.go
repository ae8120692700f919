// Package shared provides the reference-counted ownership containers that
// generated wrapper code converts into and out of.
//
// Two variants exist: Ref, a plain-counted owner for values that stay on one
// goroutine, and SyncRef, an atomically counted owner safe to clone and
// release from concurrent goroutines. Both release the held value
// deterministically when the last owner calls Release.
//
// Cast and CastSync reinterpret the payload type of a container without
// touching its count cell; they are the container-level form of the layout
// guarantee the generator relies on.
package shared
