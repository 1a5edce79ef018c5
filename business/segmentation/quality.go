package segmentation

import "math"

// silhouetteScore measures cluster cohesion vs separation in [-1, 1].
// Noise points (label < 0) are excluded; fewer than 2 labeled points or
// fewer than 2 clusters yields 0. A point whose a and b are both 0 scores
// exactly 0.
func silhouetteScore(points [][]float64, labels []int) float64 {
	members := make(map[int][]int)
	labeled := make([]int, 0, len(points))
	for i, l := range labels {
		if l < 0 {
			continue
		}
		members[l] = append(members[l], i)
		labeled = append(labeled, i)
	}

	if len(labeled) < 2 || len(members) < 2 {
		return 0
	}

	total := 0.0
	for _, i := range labeled {
		own := labels[i]

		a := 0.0
		if len(members[own]) > 1 {
			for _, j := range members[own] {
				if j == i {
					continue
				}
				a += euclidean(points[i], points[j])
			}
			a /= float64(len(members[own]) - 1)
		}

		b := math.MaxFloat64
		for l, group := range members {
			if l == own {
				continue
			}
			sum := 0.0
			for _, j := range group {
				sum += euclidean(points[i], points[j])
			}
			if mean := sum / float64(len(group)); mean < b {
				b = mean
			}
		}

		denom := math.Max(a, b)
		if denom == 0 {
			continue // s_i = 0
		}
		total += (b - a) / denom
	}

	return total / float64(len(labeled))
}
