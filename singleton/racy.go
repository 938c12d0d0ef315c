package singleton

import "sync/atomic"

// RacyHolder is the unsynchronized lazy accessor: load, and if unset, construct
// and store.
//
// Loads and stores are atomic, so there is no memory race, but the
// check-then-act sequence is not. Goroutines that call Get before the first
// store lands can all observe "unset" and each build their own value; each of
// them gets the value it built and the last store wins. From a single
// goroutine it behaves like Holder.
//
// Use Holder. RacyHolder is kept to demonstrate the failure mode.
type RacyHolder[T any] struct {
	ctor   func() *T
	val    atomic.Pointer[T]
	builds atomic.Int64
}

// NewRacyHolder returns an uninitialized RacyHolder. It panics with
// ErrNilConstructor if ctor is nil.
func NewRacyHolder[T any](ctor func() *T) *RacyHolder[T] {
	if ctor == nil {
		panic(ErrNilConstructor)
	}
	return &RacyHolder[T]{ctor: ctor}
}

// Get returns the stored value, constructing one if none is stored yet.
//
// A constructor returning nil leaves the holder unset, so the next Get
// constructs again.
func (h *RacyHolder[T]) Get() *T {
	if v := h.val.Load(); v != nil {
		return v
	}
	n := h.builds.Add(1)
	v := h.ctor()
	h.val.Store(v)
	logConstructed("racy holder", n, v)
	return v
}

// State reports whether a value has been stored.
func (h *RacyHolder[T]) State() State {
	if h.val.Load() == nil {
		return StateUninitialized
	}
	return StateInitialized
}

// Initialized reports whether a value has been stored.
func (h *RacyHolder[T]) Initialized() bool { return h.State() == StateInitialized }

// Constructions returns how many times the constructor has been entered.
// Under concurrent first access it can exceed 1.
func (h *RacyHolder[T]) Constructions() int64 { return h.builds.Load() }
