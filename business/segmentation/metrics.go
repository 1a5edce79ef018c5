package segmentation

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SegmentationRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "segmentation_runs_total",
			Help: "Count of completed segmentation runs by algorithm.",
		},
		[]string{"algorithm"},
	)

	SegmentationOutliersTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "segmentation_outliers_total",
			Help: "Total customers marked as noise by DBSCAN runs.",
		},
	)
)

func init() {
	prometheus.MustRegister(SegmentationRunsTotal, SegmentationOutliersTotal)
}
