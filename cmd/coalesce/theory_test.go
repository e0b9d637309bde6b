package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTheoreticalDepth pins the closed form at small and large n.
func TestTheoreticalDepth(t *testing.T) {
	require.Equal(t, 1.0, theoreticalDepth(2))
	require.InDelta(t, 2.0, theoreticalDepth(1<<20), 1e-5)
}

// TestTheoreticalLength checks the harmonic expansion against the exact
// 2·H_{n−1} sum.
func TestTheoreticalLength(t *testing.T) {
	require.Zero(t, theoreticalLength(1))
	for _, n := range []int{8, 64, 1024} {
		var harmonic float64
		for i := 1; i < n; i++ {
			harmonic += 1.0 / float64(i)
		}
		require.InDelta(t, 2*harmonic, theoreticalLength(n), 1e-3, "n=%d", n)
	}
}

// TestTheoreticalDivergence verifies the recurrence base case and the known
// n→∞ limit of 2.
func TestTheoreticalDivergence(t *testing.T) {
	require.Zero(t, theoreticalDivergence(1))
	require.Equal(t, 2.0, theoreticalDivergence(2))
	require.False(t, math.IsNaN(theoreticalDivergence(1000)))
	require.InDelta(t, 2.0, theoreticalDivergence(1000), 0.05)
}

// TestMetricFuncs verifies the metric dispatch and its error path.
func TestMetricFuncs(t *testing.T) {
	for _, metric := range []string{metricDepth, metricLength, metricDivergence} {
		evaluate, theory, err := metricFuncs(metric)
		require.NoError(t, err)
		require.NotNil(t, evaluate)
		require.NotNil(t, theory)
	}
	_, _, err := metricFuncs("nonsense")
	require.Error(t, err)
}

// TestRunReplicates_Reproducible verifies all replicate randomness flows
// from the seed argument: equal seeds give identical value slices even
// across parallel workers.
func TestRunReplicates_Reproducible(t *testing.T) {
	evaluate, _, err := metricFuncs(metricLength)
	require.NoError(t, err)

	first := runReplicates(8, 64, 7, evaluate)
	second := runReplicates(8, 64, 7, evaluate)
	require.Equal(t, first, second)

	third := runReplicates(8, 64, 8, evaluate)
	require.NotEqual(t, first, third)
}

// TestRunReplicates_DepthConvergence is a small end-to-end smoke test of
// the parallel replicate runner.
func TestRunReplicates_DepthConvergence(t *testing.T) {
	evaluate, theory, err := metricFuncs(metricDepth)
	require.NoError(t, err)

	values := runReplicates(16, 400, 42, evaluate)
	require.Len(t, values, 400)

	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	require.InDelta(t, theory(16), mean, 0.25)
}
