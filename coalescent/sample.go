// File: coalescent/sample.go
// Role: full-realization sampling with the fork-and-commit Source borrow.
package coalescent

import (
	"github.com/katalvlaran/coalescence/genealogy"
	"github.com/katalvlaran/coalescence/partition"
	"github.com/katalvlaran/coalescence/randx"
)

// fork builds the independent process a sampling call drives: same initial
// group size, fresh all-singletons state, randomness forked from src.
func (p *Process) fork(src *randx.Source) *Process {
	if src == nil {
		panic("coalescent: sample requires a non-nil Source")
	}

	return &Process{
		groupSize: p.groupSize,
		state:     partition.New(p.groupSize),
		src:       src.Clone(),
	}
}

// SamplePath runs an independent copy of the process to completion and
// returns the full sample path: entry 0 is (0, all-singletons) and each
// further entry pairs a waiting time with the state it produced. The
// receiver's own state and Source are untouched; src is advanced by exactly
// the randomness the run consumed (fork, drive, commit back), so repeated
// calls with the same src yield distinct realizations.
//
// Length: groupSize entries for groupSize ≥ 1; a single initial entry for
// the degenerate sizes 0 and 1.
//
// Complexity: O(n² log n) time, O(n²) memory.
func (p *Process) SamplePath(src *randx.Source) []PathPoint {
	branch := p.fork(src)

	path := make([]PathPoint, 0, p.groupSize+1)
	path = append(path, PathPoint{Time: 0, State: branch.state.Clone()})
	for {
		ev, ok := branch.NextStep()
		if !ok {
			break
		}
		path = append(path, PathPoint{Time: ev.WaitingTime, State: branch.state.Clone()})
	}

	// Commit the advanced randomness back to the caller's handle.
	src.Restore(branch.src)

	return path
}

// SampleGenealogy runs an independent copy of the process to completion
// and returns the realization as a Genealogy, accumulating the partition
// snapshots, merged representative pairs and waiting times separately.
// Source handling matches SamplePath: fork, drive, commit back.
//
// Complexity: O(n² log n) time, O(n²) memory.
func (p *Process) SampleGenealogy(src *randx.Source) *genealogy.Genealogy {
	branch := p.fork(src)

	capacity := p.groupSize
	if capacity == 0 {
		capacity = 1
	}
	path := make([]*partition.Partition, 0, capacity)
	steps := make([][2]int, 0, capacity-1)
	timeSteps := make([]float64, 0, capacity-1)

	path = append(path, branch.state.Clone())
	for {
		ev, ok := branch.NextStep()
		if !ok {
			break
		}
		path = append(path, branch.state.Clone())
		steps = append(steps, ev.Reps)
		timeSteps = append(timeSteps, ev.WaitingTime)
	}

	src.Restore(branch.src)

	return genealogy.New(path, steps, timeSteps)
}
