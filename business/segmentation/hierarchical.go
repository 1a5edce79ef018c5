package segmentation

import "math"

// runHierarchical is average-linkage agglomerative clustering: every point
// starts as its own cluster and the two clusters with the smallest mean
// cross-pair distance merge until nClusters remain. O(n^3) overall, which
// is fine for the small batches this path is selected for.
func runHierarchical(points [][]float64, nClusters int) []int {
	n := len(points)
	if nClusters < 1 {
		nClusters = 1
	}
	if nClusters > n {
		nClusters = n
	}

	dist := distanceMatrix(points)

	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}

	for len(clusters) > nClusters {
		bestA, bestB := 0, 1
		bestLink := math.MaxFloat64

		for a := 0; a < len(clusters); a++ {
			for b := a + 1; b < len(clusters); b++ {
				link := averageLinkage(clusters[a], clusters[b], dist)
				if link < bestLink {
					bestLink = link
					bestA, bestB = a, b
				}
			}
		}

		clusters[bestA] = append(clusters[bestA], clusters[bestB]...)
		clusters = append(clusters[:bestB], clusters[bestB+1:]...)
	}

	labels := make([]int, n)
	for c, members := range clusters {
		for _, i := range members {
			labels[i] = c
		}
	}
	return labels
}

func averageLinkage(a, b []int, dist [][]float64) float64 {
	sum := 0.0
	for _, i := range a {
		for _, j := range b {
			sum += dist[i][j]
		}
	}
	return sum / float64(len(a)*len(b))
}
