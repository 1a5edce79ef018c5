package segmentation

const (
	labelUndefined = -2
	labelNoise     = -1
)

// runDBSCAN labels points with 0-based cluster IDs assigned in seed order;
// sparse points stay at -1. Border points reached from two expansions keep
// the label of whichever cluster reached them first.
func runDBSCAN(points [][]float64, eps float64, minPts int) []int {
	n := len(points)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = labelUndefined
	}

	clusterID := 0
	for i := 0; i < n; i++ {
		if labels[i] != labelUndefined {
			continue
		}

		neighbors := rangeQuery(points, i, eps)
		if len(neighbors) < minPts {
			labels[i] = labelNoise
			continue
		}

		labels[i] = clusterID

		// seed set: neighbors minus the seed itself
		queue := make([]int, 0, len(neighbors))
		for _, j := range neighbors {
			if j != i {
				queue = append(queue, j)
			}
		}

		for len(queue) > 0 {
			q := queue[0]
			queue = queue[1:]

			if labels[q] == labelNoise {
				labels[q] = clusterID // border point
			}
			if labels[q] != labelUndefined {
				continue
			}
			labels[q] = clusterID

			qNeighbors := rangeQuery(points, q, eps)
			if len(qNeighbors) >= minPts {
				queue = append(queue, qNeighbors...)
			}
		}

		clusterID++
	}

	return labels
}

// rangeQuery returns indexes of all points within eps of points[idx],
// including idx itself.
func rangeQuery(points [][]float64, idx int, eps float64) []int {
	var result []int
	q := points[idx]
	for i, p := range points {
		if euclidean(q, p) <= eps {
			result = append(result, i)
		}
	}
	return result
}
