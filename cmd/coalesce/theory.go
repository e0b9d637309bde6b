package main

import "math"

// eulerMascheroni is γ, the Euler–Mascheroni constant.
const eulerMascheroni = 0.57721566490153286

// theoreticalDepth is E[depth] = 2(1 − 1/n): the expected time to the most
// recent common ancestor of n individuals.
func theoreticalDepth(n int) float64 {
	return 2.0 * (1.0 - 1.0/float64(n))
}

// theoreticalLength approximates E[length] = 2·H_{n−1} by
// 2(ln(n−1) + γ + 1/(2(n−1))), the standard harmonic-number expansion.
// n == 1 has no branches.
func theoreticalLength(n int) float64 {
	if n < 2 {
		return 0
	}

	return 2.0 * (math.Log(float64(n-1)) + eulerMascheroni + 1.0/float64(2*(n-1)))
}

// theoreticalDivergence is E[mean pairwise divergence], built by the
// first-step recurrence on group size: with p = 2/(k(k−1)) the chance a
// given pair coalesces at the next event,
// E_k = p·2p + (1−p)·(2p + E_{k−1}), starting from E_2 = 2.
func theoreticalDivergence(n int) float64 {
	if n < 2 {
		return 0
	}
	x := 2.0
	for k := 2; k < n; k++ {
		p := 2.0 / (float64(k) * (float64(k) - 1.0))
		x = p*(2.0*p) + (1.0-p)*(2.0*p+x)
	}

	return x
}
