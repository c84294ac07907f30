package drift

import "math"

// smoothing constant for the PMI estimates
const epsilon = 1.0

// pmi computes smoothed pointwise mutual information between a token
// and a category over row counts.
//
//	pmi(a,b) = log((N_ab + ε) * N / ((N_a + ε)(N_b + ε)))
//
// Where:
//   - N_ab = rows containing the token and tagged with the category
//   - N_a, N_b = rows containing the token / tagged with the category
//   - N = total rows
func pmi(nAB, nA, nB, total int64) float64 {
	if total == 0 {
		return 0
	}

	numerator := (float64(nAB) + epsilon) * float64(total)
	denominator := (float64(nA) + epsilon) * (float64(nB) + epsilon)
	if denominator == 0 {
		return 0
	}

	return math.Log(numerator / denominator)
}

// npmi normalizes pmi into roughly [-1, 1] by -log(P(a,b)).
func npmi(nAB, nA, nB, total int64) float64 {
	if total == 0 || nAB == 0 {
		return 0
	}

	p := pmi(nAB, nA, nB, total)
	pAB := (float64(nAB) + epsilon) / float64(total)
	logPAB := math.Log(pAB)
	if logPAB == 0 {
		return 0
	}

	return p / -logPAB
}
