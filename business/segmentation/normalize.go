package segmentation

import "math"

// normParams are fitted over exactly one batch and never reused across
// runs; stale parameters from a previous batch must not leak in.
type normParams struct {
	mean []float64
	std  []float64
}

func fitNorm(vectors [][]float64) normParams {
	if len(vectors) == 0 {
		return normParams{}
	}

	dim := len(vectors[0])
	mean := make([]float64, dim)
	std := make([]float64, dim)

	for _, v := range vectors {
		for j := range v {
			mean[j] += v[j]
		}
	}
	n := float64(len(vectors))
	for j := range mean {
		mean[j] /= n
	}

	for _, v := range vectors {
		for j := range v {
			d := v[j] - mean[j]
			std[j] += d * d
		}
	}
	for j := range std {
		std[j] = math.Sqrt(std[j] / n)
	}

	return normParams{mean: mean, std: std}
}

// apply z-scores each vector in place-order (new slices, inputs untouched).
// Zero-variance coordinates become exactly 0 instead of NaN.
func (p normParams) apply(vectors [][]float64) [][]float64 {
	out := make([][]float64, len(vectors))
	for i, v := range vectors {
		nv := make([]float64, len(v))
		for j := range v {
			if p.std[j] == 0 {
				nv[j] = 0
				continue
			}
			nv[j] = (v[j] - p.mean[j]) / p.std[j]
		}
		out[i] = nv
	}
	return out
}

// applyWeights scales normalized coordinates by the engine's weighting
// table. Features without an entry keep weight 1.
func applyWeights(vectors [][]float64, names []string, weights map[string]float64) {
	if len(weights) == 0 {
		return
	}
	for j, name := range names {
		w, ok := weights[name]
		if !ok || w == 1.0 {
			continue
		}
		for i := range vectors {
			vectors[i][j] *= w
		}
	}
}
