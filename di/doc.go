// Package di provides a small, type-keyed dependency registry for Go.
//
// A Container maps each Go type to exactly one entry. There are three kinds:
//
//   - Shared: a value registered up front with Register. Every resolution
//     returns a pointer to the same instance.
//   - Builder: a constructor registered with RegisterBuilder. It runs once,
//     on the first resolution, and its result becomes a Shared entry.
//   - Factory: a constructor registered with RegisterFactory. It runs on
//     every resolution and may keep state in its closure between calls.
//
// Constructors receive the Container and may resolve other types from it,
// so registration order does not have to match construction order.
//
// Quick guidance
//
// Use the container in your composition root (main/bootstrap):
//   - register configuration and leaf services with Register
//   - register expensive or dependent services with RegisterBuilder
//   - register per-use objects (requests, buffers, ids) with RegisterFactory
//
// Errors are typed values you can assert with errors.As:
//   - DuplicateRegistrationError: a type was registered twice
//   - NotRegisteredError: a type was resolved without an entry
//   - NotImplementedError: RegisterAutomaticFactory (unsupported)
//   - TypeMismatchError: internal invariant violation (should not happen)
//
// A Container is not safe for concurrent use. There is no cycle detection
// between builders, no scopes and no teardown ordering.
//
// Import
//
//	"github.com/sghaida/kdi/di"
package di
