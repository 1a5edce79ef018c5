package domain

// SegmentationConfig is the per-tenant override row for the engine's
// weighting tables and threshold ladders. Raw JSON columns keep the row
// schema stable while the engine config evolves.
type SegmentationConfig struct {
	TenantID string `json:"tenant_id" gorm:"column:tenant_id;primaryKey"`

	NClusters int     `json:"n_clusters" gorm:"column:n_clusters"`
	Eps       float64 `json:"eps" gorm:"column:eps"`
	MinPts    int     `json:"min_pts" gorm:"column:min_pts"`

	// heuristic value-metric denominators
	GrowthFrequencyDenom float64 `json:"growth_frequency_denom" gorm:"column:growth_frequency_denom"`
	ProfitSpendDenom     float64 `json:"profit_spend_denom" gorm:"column:profit_spend_denom"`

	FeatureWeightsRaw []byte             `json:"-" gorm:"column:feature_weights"`
	FeatureWeights    map[string]float64 `json:"feature_weights" gorm:"-"`

	RFMThresholdsRaw []byte         `json:"-" gorm:"column:rfm_thresholds"`
	RFMThresholds    *RFMThresholds `json:"rfm_thresholds,omitempty" gorm:"-"`

	UpdatedAt int64 `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (SegmentationConfig) TableName() string {
	return "segmentation_configs"
}

// RFMThresholds are the fixed scoring ladders. Recency is scored in
// reverse: lower days-since-last-booking means a higher score.
type RFMThresholds struct {
	RecencyDays []int     `json:"recency_days"`
	Frequency   []int     `json:"frequency"`
	Monetary    []float64 `json:"monetary"`
}
