package segmentation

import (
	"math"
	"math/rand"
)

type kmeansRun struct {
	labels    []int
	centroids [][]float64
	inertia   float64
}

// seedCentroids picks k starting centroids from actual data points,
// k-means++ style: the first uniformly, each next weighted by squared
// distance to the nearest centroid chosen so far.
func seedCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	centroids := make([][]float64, 0, k)

	first := append([]float64(nil), points[rng.Intn(n)]...)
	centroids = append(centroids, first)

	d2 := make([]float64, n)
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			best := math.MaxFloat64
			for _, c := range centroids {
				if d := squaredDistance(p, c); d < best {
					best = d
				}
			}
			d2[i] = best
			total += best
		}

		// all remaining points coincide with a centroid
		if total == 0 {
			centroids = append(centroids, append([]float64(nil), points[rng.Intn(n)]...))
			continue
		}

		target := rng.Float64() * total
		pick := n - 1
		acc := 0.0
		for i, d := range d2 {
			acc += d
			if acc >= target {
				pick = i
				break
			}
		}
		centroids = append(centroids, append([]float64(nil), points[pick]...))
	}

	return centroids
}

// runKMeans is Lloyd iteration: assign to the nearest centroid, recompute
// centroids as member means, stop when labels are unchanged or maxIter
// passes elapse. Clusters that empty out keep their previous centroid.
func runKMeans(points [][]float64, k, maxIter int, rng *rand.Rand) kmeansRun {
	n := len(points)
	if k > n {
		k = n
	}

	centroids := seedCentroids(points, k, rng)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, p := range points {
			best := 0
			bestDist := math.MaxFloat64
			for c, centroid := range centroids {
				if d := squaredDistance(p, centroid); d < bestDist {
					bestDist = d
					best = c
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}

		if !changed {
			break
		}

		sums := make([][]float64, k)
		counts := make([]int, k)
		dim := len(points[0])
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, p := range points {
			c := labels[i]
			counts[c]++
			for j, x := range p {
				sums[c][j] += x
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			for j := range sums[c] {
				sums[c][j] /= float64(counts[c])
			}
			centroids[c] = sums[c]
		}
	}

	inertia := 0.0
	for i, p := range points {
		inertia += squaredDistance(p, centroids[labels[i]])
	}

	return kmeansRun{labels: labels, centroids: centroids, inertia: inertia}
}
