package singleton

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/untillpro/goutils/logger"
)

// ErrNilConstructor is the panic value of NewHolder and NewRacyHolder when
// they are given a nil constructor.
var ErrNilConstructor = errors.New("singleton: nil constructor")

// State is the lifecycle of a holder's value.
type State uint32

const (
	// StateUninitialized means no value has been constructed yet.
	StateUninitialized State = iota

	// StateInitialized means the value exists. It is terminal.
	StateInitialized
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	default:
		return "State(" + strconv.FormatUint(uint64(s), 10) + ")"
	}
}

// Holder owns one lazily constructed *T.
//
// The constructor runs at most once, on the first call to Get, and every Get
// (from any goroutine) returns the pointer it produced. A Holder must be
// created with NewHolder; the zero value is not usable.
type Holder[T any] struct {
	get    func() *T
	state  atomic.Uint32
	builds atomic.Int64
}

// NewHolder returns an uninitialized Holder that will build its value with ctor.
//
// ctor is not called here. NewHolder panics with ErrNilConstructor if ctor is nil.
func NewHolder[T any](ctor func() *T) *Holder[T] {
	if ctor == nil {
		panic(ErrNilConstructor)
	}
	h := &Holder[T]{}
	h.get = sync.OnceValue(func() *T {
		n := h.builds.Add(1)
		v := ctor()
		h.state.Store(uint32(StateInitialized))
		logConstructed("holder", n, v)
		return v
	})
	return h
}

// Get returns the held value, constructing it on the first call.
//
// Whatever ctor returned, nil included, is returned by every call. If ctor
// panicked, Get re-panics with the same value on every call and the holder
// stays StateUninitialized.
func (h *Holder[T]) Get() *T { return h.get() }

// State reports the lifecycle state without triggering construction.
func (h *Holder[T]) State() State { return State(h.state.Load()) }

// Initialized reports whether the value has been constructed.
func (h *Holder[T]) Initialized() bool { return h.State() == StateInitialized }

// Constructions returns how many times the constructor has been entered.
// For a Holder this is 0 or 1.
func (h *Holder[T]) Constructions() int64 { return h.builds.Load() }

func logConstructed[T any](kind string, n int64, v *T) {
	if !logger.IsVerbose() {
		return
	}
	logger.Verbose(fmt.Sprintf("singleton: %s constructed %T (construction #%d)", kind, v, n))
}
