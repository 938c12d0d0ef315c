// Package singleton provides lazily constructed, process-wide single instances.
//
// The package offers two holders with the same surface:
//
//   - Holder[T]: constructs its value at most once, on the first Get, no matter
//     how many goroutines race for it. Every Get returns the same pointer.
//
//   - RacyHolder[T]: the classic unsynchronized "if unset, construct, then store"
//     accessor. It behaves like Holder when used from a single goroutine, but
//     concurrent first callers may each construct a value. It exists to show the
//     race, not to be used.
//
// On top of Holder the package owns exactly one Instance for the process,
// reachable through GetInstance. Nothing is constructed at package init; the
// first GetInstance call does the work.
//
// Both holders move through two states, StateUninitialized and StateInitialized.
// The transition happens once and is never reversed: there is no reset and no
// destruction. Construction is assumed infallible. A constructor that panics
// is not retried: the panic reaches the caller of Get.
//
// Import
//
//	"github.com/sghaida/solo/singleton"
package singleton
