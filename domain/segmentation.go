package domain

// SegmentCharacteristics is recomputed from the raw member records of a
// cluster, never from normalized coordinates.
type SegmentCharacteristics struct {
	AvgAge            float64  `json:"avg_age"`
	AvgIncome         string   `json:"avg_income"`
	AvgSpending       float64  `json:"avg_spending"`
	BookingFrequency  float64  `json:"booking_frequency"`
	TopServices       []string `json:"top_services"`
	PreferredTimes    []string `json:"preferred_times"`
	SatisfactionScore float64  `json:"satisfaction_score"`
}

// SegmentValue holds heuristic business-value metrics. These are derived
// formulas, not calibrated against outcome data.
type SegmentValue struct {
	AvgLifetimeValue float64 `json:"avg_lifetime_value"`
	RetentionRate    float64 `json:"retention_rate"`
	GrowthPotential  float64 `json:"growth_potential"`
	Profitability    float64 `json:"profitability"`
}

type CustomerSegment struct {
	SegmentID       int                    `json:"segment_id"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description"`
	Size            int                    `json:"size"`
	Percentage      float64                `json:"percentage"`
	Characteristics SegmentCharacteristics `json:"characteristics"`
	Value           SegmentValue           `json:"value"`
	Recommendations []string               `json:"recommendations"`
	CustomerIDs     []string               `json:"customer_ids"`
}

type ClusteringResult struct {
	RunID           string            `json:"run_id"`
	Algorithm       string            `json:"algorithm"`
	Segments        []CustomerSegment `json:"segments"`
	SilhouetteScore float64           `json:"silhouette_score"`
	Inertia         *float64          `json:"inertia,omitempty"`
	ClusterCount    int               `json:"cluster_count"`
	Outliers        []string          `json:"outliers,omitempty"`
}

type RFMAnalysis struct {
	CustomerID     string  `json:"customer_id"`
	Recency        int     `json:"recency"`
	Frequency      int     `json:"frequency"`
	Monetary       float64 `json:"monetary"`
	RecencyScore   int     `json:"r_score"`
	FrequencyScore int     `json:"f_score"`
	MonetaryScore  int     `json:"m_score"`
	RFMScore       string  `json:"rfm_score"`
	Segment        string  `json:"segment"`
}

type SegmentPrediction struct {
	SegmentID  int     `json:"segment_id"`
	Confidence float64 `json:"confidence"`
	Distance   float64 `json:"distance"`
}
