package segmentation

import (
	"fmt"
	"stayInsights/domain"
	"time"
)

// Feature coordinates in their fixed order. Every vector in a run uses
// this order; the optional request subset selects from it.
const (
	FeatureTotalSpent          = "total_spent"
	FeatureBookingFrequency    = "booking_frequency"
	FeatureAverageBookingValue = "average_booking_value"
	FeatureCancellationRate    = "cancellation_rate"
	FeatureSatisfactionScore   = "satisfaction_score"
	FeatureLoyaltyPoints       = "loyalty_points"
	FeatureReferralCount       = "referral_count"
	FeatureWebsiteVisits       = "website_visits"
	FeatureAge                 = "age"
	FeatureIncomeTier          = "income_tier"
	FeatureRecencyDays         = "recency_days"
)

var featureOrder = []string{
	FeatureTotalSpent,
	FeatureBookingFrequency,
	FeatureAverageBookingValue,
	FeatureCancellationRate,
	FeatureSatisfactionScore,
	FeatureLoyaltyPoints,
	FeatureReferralCount,
	FeatureWebsiteVisits,
	FeatureAge,
	FeatureIncomeTier,
	FeatureRecencyDays,
}

// FeatureNames returns the fixed feature order.
func FeatureNames() []string {
	out := make([]string, len(featureOrder))
	copy(out, featureOrder)
	return out
}

func encodeIncomeTier(tier string) float64 {
	switch tier {
	case domain.IncomeTierLow:
		return 1.0
	case domain.IncomeTierMedium:
		return 2.0
	case domain.IncomeTierHigh:
		return 3.0
	case domain.IncomeTierVeryHigh:
		return 4.0
	default:
		// neutral default when tier is unknown
		return 2.0
	}
}

func recencyDays(now, last time.Time) float64 {
	if last.IsZero() || last.After(now) {
		return 0
	}
	return float64(int(now.Sub(last).Hours() / 24))
}

func buildFeatureVector(c domain.CustomerRecord, now time.Time) []float64 {
	return []float64{
		c.TotalSpent,
		c.BookingFrequency,
		c.AverageBookingValue,
		c.CancellationRate,
		c.SatisfactionScore,
		float64(c.LoyaltyPoints),
		float64(c.ReferralCount),
		float64(c.WebsiteVisits),
		float64(c.Age),
		encodeIncomeTier(c.IncomeTier),
		recencyDays(now, c.LastBookingDate),
	}
}

// prepareFeatures converts a batch into vectors in input order. An empty
// subset means the full fixed 11-feature vector; a non-empty subset picks
// the matching coordinates and rejects unknown names.
func prepareFeatures(customers []domain.CustomerRecord, subset []string, now time.Time) ([][]float64, []string, error) {
	names := featureOrder
	if len(subset) > 0 {
		names = subset
	}

	idx := make([]int, 0, len(names))
	for _, name := range names {
		found := -1
		for i, known := range featureOrder {
			if known == name {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, nil, fmt.Errorf("unknown feature: %s", name)
		}
		idx = append(idx, found)
	}

	vectors := make([][]float64, 0, len(customers))
	for _, c := range customers {
		full := buildFeatureVector(c, now)
		v := make([]float64, len(idx))
		for j, i := range idx {
			v[j] = full[i]
		}
		vectors = append(vectors, v)
	}

	return vectors, names, nil
}
