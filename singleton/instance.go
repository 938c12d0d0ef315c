package singleton

import (
	"strconv"
	"sync/atomic"
)

// Instance is the process-wide singleton. It carries no state besides its
// identity; seq only makes instances distinguishable in logs.
type Instance struct {
	seq int64
}

// String implements fmt.Stringer.
func (i *Instance) String() string {
	if i == nil {
		return "singleton.Instance(nil)"
	}
	return "singleton.Instance#" + strconv.FormatInt(i.seq, 10)
}

var (
	instanceSeq atomic.Int64

	// process owns the one Instance. Declaring it does not construct anything.
	process = NewHolder(newInstance)
)

func newInstance() *Instance {
	return &Instance{seq: instanceSeq.Add(1)}
}

// GetInstance returns the process-wide Instance, constructing it on first use.
// Every call returns the same pointer.
func GetInstance() *Instance { return process.Get() }

// Initialized reports whether the process-wide Instance has been constructed.
func Initialized() bool { return process.Initialized() }

// Constructions reports how many times the process-wide Instance was built.
func Constructions() int64 { return process.Constructions() }
