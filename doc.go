// Package kdi is a process-local, type-keyed dependency registry for Go.
//
// Callers register values, lazy builders or repeatable factories under a Go
// type and later resolve a shared pointer to the instance, without
// hardwiring construction order.
//
// Package kdi See subpackages:
//   - di: the Container and its Register / Resolve API
//   - examples/*: runnable wiring example and the types it uses
package kdi
