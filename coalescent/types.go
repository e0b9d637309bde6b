// File: coalescent/types.go
// Role: Event/PathPoint value types and Process construction options.
package coalescent

import (
	"github.com/katalvlaran/coalescence/partition"
	"github.com/katalvlaran/coalescence/randx"
)

// Event describes one merge: the exponential waiting time that preceded it
// and the representative indices of the two sets it joined. Reps holds the
// smallest member of each merged set (the stable representative
// convention shared with partition.Sets).
type Event struct {
	// WaitingTime is the strictly positive time elapsed since the previous
	// event, drawn from Exp(k(k−1)/2).
	WaitingTime float64

	// Reps are the representative element indices of the merged sets.
	Reps [2]int
}

// PathPoint is one entry of a sampled path: the waiting time that led into
// State (0 for the initial entry) and the partition snapshot itself.
type PathPoint struct {
	Time  float64
	State *partition.Partition
}

// Option configures a Process before its first step. Option constructors
// validate their arguments and panic on meaningless input; the process
// itself never panics on legal use.
type Option func(*Process)

// WithSeed seeds the process's owned Source deterministically. Use in
// tests and anywhere reproducibility matters.
func WithSeed(seed uint64) Option {
	return func(p *Process) {
		p.src = randx.New(seed)
	}
}

// WithSource hands the process an explicit Source to own. The process
// assumes exclusive use of it from then on. Panics on nil.
func WithSource(src *randx.Source) Option {
	if src == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("coalescent: WithSource(nil)")
	}

	return func(p *Process) {
		p.src = src
	}
}
