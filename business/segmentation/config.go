package segmentation

import (
	"context"
	"stayInsights/domain"
	"time"
)

type Config struct {
	// minimum batch size accepted by Segment
	MinBatchSize int

	// defaults for kmeans / hierarchical
	NClusters     int
	MaxIterations int

	// defaults for dbscan
	Eps    float64
	MinPts int

	// auto algorithm selection cutoffs (batch size)
	AutoHierarchicalBelow int
	AutoKMeansBelow       int

	// per-feature multipliers applied after z-score normalization,
	// keyed by feature name. Fixed at construction, read-only afterwards.
	FeatureWeights map[string]float64

	// RFM scoring ladders. Recency scores in reverse: fewer days wins.
	RecencyDays []int
	Frequency   []int
	Monetary    []float64

	// heuristic value-metric knobs
	GrowthFrequencyDenom float64
	ProfitSpendDenom     float64
	RetentionWindow      time.Duration

	// clock used for recency and retention; nil means time.Now
	Now func() time.Time
}

const (
	defaultMinBatchSize          = 10
	defaultNClusters             = 5
	defaultMaxIterations         = 100
	defaultEps                   = 0.5
	defaultMinPts                = 5
	defaultAutoHierarchicalBelow = 50
	defaultAutoKMeansBelow       = 200
	defaultGrowthFrequencyDenom  = 4.0
	defaultProfitSpendDenom      = 2500.0
	defaultRetentionWindow       = 182 * 24 * time.Hour
)

func DefaultConfig() Config {
	weights := make(map[string]float64, len(featureOrder))
	for _, name := range featureOrder {
		weights[name] = 1.0
	}

	return Config{
		MinBatchSize:  defaultMinBatchSize,
		NClusters:     defaultNClusters,
		MaxIterations: defaultMaxIterations,

		Eps:    defaultEps,
		MinPts: defaultMinPts,

		AutoHierarchicalBelow: defaultAutoHierarchicalBelow,
		AutoKMeansBelow:       defaultAutoKMeansBelow,

		FeatureWeights: weights,

		RecencyDays: []int{30, 60, 90, 180},
		Frequency:   []int{1, 3, 6, 12},
		Monetary:    []float64{100, 500, 1000, 2500},

		GrowthFrequencyDenom: defaultGrowthFrequencyDenom,
		ProfitSpendDenom:     defaultProfitSpendDenom,
		RetentionWindow:      defaultRetentionWindow,
	}
}

func (cfg Config) now() time.Time {
	if cfg.Now != nil {
		return cfg.Now()
	}
	return time.Now()
}

// read per-tenant segmentation config from DB.
type ConfigRepository interface {
	GetConfig(ctx context.Context, tenantID string) (domain.SegmentationConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.SegmentationConfig) error
}

// read customer batches from DB when the request carries no inline records.
type CustomerRepository interface {
	FindAll(ctx context.Context, tenantID string) ([]domain.CustomerRecord, error)
	FindByIDs(ctx context.Context, tenantID string, ids []string) ([]domain.CustomerRecord, error)
}

// RFMCache is an optional TTL cache for RFM results.
type RFMCache interface {
	Get(ctx context.Context, tenantID, batchKey string) ([]domain.RFMAnalysis, bool, error)
	Set(ctx context.Context, tenantID, batchKey string, analyses []domain.RFMAnalysis) error
}
