// File: coalescent/sample_test.go
package coalescent_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/coalescence/coalescent"
	"github.com/katalvlaran/coalescence/randx"
)

// SampleSuite exercises full-realization sampling under various scenarios.
type SampleSuite struct {
	suite.Suite
}

// TestPathShape verifies the structural invariants of a sampled path:
// groupSize entries, monotone set counts n−i, singleton start, single-set
// end.
func (s *SampleSuite) TestPathShape() {
	const n = 10
	p := coalescent.New(n, coalescent.WithSeed(1))
	src := randx.New(2)

	path := p.SamplePath(src)
	require.Len(s.T(), path, n)
	require.Zero(s.T(), path[0].Time)

	for i, point := range path {
		require.Equal(s.T(), n-i, point.State.Count(), "snapshot %d", i)
		if i > 0 {
			require.Greater(s.T(), point.Time, 0.0)
		}
	}
	require.Equal(s.T(), 1, path[n-1].State.Count())
}

// TestGenealogyShape verifies the record invariants: matching slice
// lengths and positive waiting times.
func (s *SampleSuite) TestGenealogyShape() {
	const n = 16
	p := coalescent.New(n, coalescent.WithSeed(4))
	src := randx.New(8)

	g := p.SampleGenealogy(src)
	require.Equal(s.T(), n, g.GroupSize())
	require.Len(s.T(), g.Path(), n)
	require.Len(s.T(), g.Steps(), n-1)
	require.Len(s.T(), g.TimeSteps(), n-1)
	for i, dt := range g.TimeSteps() {
		require.Greater(s.T(), dt, 0.0, "event %d", i)
	}
	for i, state := range g.Path() {
		require.Equal(s.T(), n-i, state.Count())
	}
}

// TestReceiverUntouched verifies sampling never mutates the receiving
// process: state and owned randomness both stay put.
func (s *SampleSuite) TestReceiverUntouched() {
	p := coalescent.New(7, coalescent.WithSeed(10))
	src := randx.New(20)

	_ = p.SampleGenealogy(src)
	require.Equal(s.T(), 7, p.NumLineages(), "receiver state must not advance")

	// The receiver's own source is untouched too: its next event matches a
	// twin process that never sampled.
	twin := coalescent.New(7, coalescent.WithSeed(10))
	evP, _ := p.NextStep()
	evT, _ := twin.NextStep()
	require.Equal(s.T(), evT, evP)
}

// TestCallerSourceAdvances verifies the commit-back half of the borrow:
// repeated samples with one Source yield distinct realizations, and the
// Source ends in the exact state an external clone reaches.
func (s *SampleSuite) TestCallerSourceAdvances() {
	p := coalescent.New(6, coalescent.WithSeed(0))
	src := randx.New(77)

	first := p.SampleGenealogy(src)
	second := p.SampleGenealogy(src)
	require.NotEqual(s.T(), first.TimeSteps(), second.TimeSteps(),
		"consecutive samples must consume fresh randomness")

	// Replaying both samples from a fresh seed-77 source lands on the same
	// state src holds now.
	replay := randx.New(77)
	q := coalescent.New(6, coalescent.WithSeed(0))
	_ = q.SampleGenealogy(replay)
	_ = q.SampleGenealogy(replay)
	require.Equal(s.T(), replay.Uint64(), src.Uint64(),
		"committed state must equal the replayed state")
}

// TestReproducibility verifies equal seeds give identical records and
// different seeds diverge (overwhelmingly, n ≥ 3).
func (s *SampleSuite) TestReproducibility() {
	sample := func(seed uint64) ([][2]int, []float64) {
		p := coalescent.New(9, coalescent.WithSeed(0))
		g := p.SampleGenealogy(randx.New(seed))

		return g.Steps(), g.TimeSteps()
	}

	steps1, times1 := sample(123)
	steps2, times2 := sample(123)
	require.Equal(s.T(), steps1, steps2)
	require.Equal(s.T(), times1, times2)

	steps3, times3 := sample(321)
	require.NotEqual(s.T(), times1, times3)
	_ = steps3
}

// TestDegenerateSizes verifies sizes 0 and 1 sample to well-formed,
// zero-event results.
func (s *SampleSuite) TestDegenerateSizes() {
	src := randx.New(1)

	p1 := coalescent.New(1, coalescent.WithSeed(1))
	g := p1.SampleGenealogy(src)
	require.Equal(s.T(), 1, g.GroupSize())
	require.Len(s.T(), g.Path(), 1)
	require.Empty(s.T(), g.Steps())
	require.Empty(s.T(), g.TimeSteps())
	require.Zero(s.T(), g.Depth())
	require.Zero(s.T(), g.Length())

	p0 := coalescent.New(0, coalescent.WithSeed(1))
	path := p0.SamplePath(src)
	require.Len(s.T(), path, 1)
	require.Zero(s.T(), path[0].State.Count())
}

// TestPairScenario verifies the n == 2 closed-form scenario: one event at
// exponential rate 1, divergence twice the waiting time, mean equal to the
// only pair.
func (s *SampleSuite) TestPairScenario() {
	p := coalescent.New(2, coalescent.WithSeed(0))
	g := p.SampleGenealogy(randx.New(55))

	require.Len(s.T(), g.TimeSteps(), 1)
	dt := g.TimeSteps()[0]
	require.Greater(s.T(), dt, 0.0)
	require.Equal(s.T(), 1, g.Path()[1].Count())
	require.True(s.T(), g.Path()[1].SameSet(0, 1))
	require.Equal(s.T(), 2*dt, g.Divergence(0, 1))
	require.Equal(s.T(), g.Divergence(0, 1), g.MeanPairwiseDivergence())
}

// TestSampledStatisticsConsistency cross-checks Depth/Length against the
// raw record on a sampled genealogy.
func (s *SampleSuite) TestSampledStatisticsConsistency() {
	const n = 32
	p := coalescent.New(n, coalescent.WithSeed(6))
	g := p.SampleGenealogy(randx.New(13))

	var depth, length float64
	for i, dt := range g.TimeSteps() {
		depth += dt
		length += float64(n-i) * dt
	}
	require.InDelta(s.T(), depth, g.Depth(), 1e-12)
	require.InDelta(s.T(), length, g.Length(), 1e-12)

	tree := g.Tree()
	require.Equal(s.T(), 2*n-1, tree.NodeCount())
	require.Equal(s.T(), 2*(n-1), tree.EdgeCount())
}

// TestNilSourcePanics verifies sampling demands a Source.
func (s *SampleSuite) TestNilSourcePanics() {
	p := coalescent.New(3, coalescent.WithSeed(1))
	require.Panics(s.T(), func() { p.SamplePath(nil) })
	require.Panics(s.T(), func() { p.SampleGenealogy(nil) })
}

// TestSampleSuite runs the suite.
func TestSampleSuite(t *testing.T) {
	suite.Run(t, new(SampleSuite))
}
