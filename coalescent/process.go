// File: coalescent/process.go
// Role: the Process state machine — construction, stepping, cloning.
// Determinism:
//   - Set choice indexes the stable partition.Sets() enumeration, and the
//     reported representative is each set's smallest member, so a fixed
//     Source trajectory fixes the realization exactly.
// Concurrency:
//   - A Process is single-consumer; distinct Processes (e.g. Monte Carlo
//     replicates) share no state and run in parallel freely.
package coalescent

import (
	"fmt"

	"github.com/katalvlaran/coalescence/partition"
	"github.com/katalvlaran/coalescence/randx"
)

// Process is an n-coalescent in the space of partitions of {0,…,n−1}.
// It starts with n singleton sets and is absorbed when one set remains.
type Process struct {
	groupSize int
	state     *partition.Partition
	src       *randx.Source
}

// New creates a Process over groupSize individuals in the all-singletons
// state. Without options the owned Source is wall-clock seeded; pass
// WithSeed or WithSource for reproducible runs. groupSize 0 and 1 are
// legal degenerate configurations (terminal at birth). Panics on negative
// groupSize.
// Complexity: O(n).
func New(groupSize int, opts ...Option) *Process {
	if groupSize < 0 {
		panic(fmt.Sprintf("coalescent: New(%d): negative group size", groupSize))
	}
	p := &Process{
		groupSize: groupSize,
		state:     partition.New(groupSize),
		src:       randx.NewFromTime(),
	}
	// Apply options.
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// GroupSize returns n, the number of individuals the process started from.
// Complexity: O(1).
func (p *Process) GroupSize() int { return p.groupSize }

// NumLineages returns the number of sets currently alive.
// Complexity: O(1).
func (p *Process) NumLineages() int { return p.state.Count() }

// State returns the current partition. Callers must treat it as read-only;
// merging through it directly would desynchronize the process.
func (p *Process) State() *partition.Partition { return p.state }

// Done reports whether the process has reached its absorbing state
// (at most one set).
// Complexity: O(1).
func (p *Process) Done() bool { return p.state.Count() <= 1 }

// Clone returns an independent copy: partition state and random-source
// state are both duplicated, so clone and original evolve as reproducible
// independent branches.
// Complexity: O(n).
func (p *Process) Clone() *Process {
	return &Process{
		groupSize: p.groupSize,
		state:     p.state.Clone(),
		src:       p.src.Clone(),
	}
}

// PeekNextStep draws the next merge event without mutating the partition
// state; only the owned Source advances. Returns false when the process is
// terminal (k ≤ 1) — normal loop termination, not a failure.
//
// Transition rule, with k the current number of sets:
//  1. Draw the waiting time from Exp(k(k−1)/2).
//  2. Choose 2 of the k sets uniformly without replacement, by index into
//     the stable Sets() enumeration.
//  3. Resolve each chosen set to its smallest member as representative.
//
// Complexity: O(n log n).
func (p *Process) PeekNextStep() (Event, bool) {
	k := p.state.Count()
	if k <= 1 {
		return Event{}, false
	}

	// k(k−1) is even, so the integer halving is exact.
	rate := float64(k * (k - 1) / 2)
	wait := p.src.ExpFloat64(rate)

	sets := p.state.Sets()
	first, second := p.src.Pick2(k)

	return Event{
		WaitingTime: wait,
		Reps:        [2]int{sets[first][0], sets[second][0]},
	}, true
}

// NextStep draws the next event and applies it, merging the two chosen
// sets. Returns false at the terminal state without drawing.
// Complexity: O(n log n).
func (p *Process) NextStep() (Event, bool) {
	ev, ok := p.PeekNextStep()
	if !ok {
		return Event{}, false
	}
	p.state.Union(ev.Reps[0], ev.Reps[1])

	return ev, true
}
