package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SegmentationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "segmentation_request_latency_seconds",
		Help:    "Latency of the segmentation endpoint",
		Buckets: prometheus.DefBuckets,
	})

	SegmentationRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "segmentation_requests_total",
		Help: "Total segmentation requests served",
	})

	RFMRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rfm_requests_total",
		Help: "Total RFM analysis requests served",
	})
)

func Init() {
	prometheus.MustRegister(SegmentationDuration, SegmentationRequests, RFMRequests)
}
