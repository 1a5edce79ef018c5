package segmentation

import (
	"fmt"
	"stayInsights/domain"
)

// RFM segment ladder on the score sum (range 3..15).
const (
	rfmChampions         = "Champions"
	rfmLoyalCustomers    = "Loyal Customers"
	rfmPotentialLoyalist = "Potential Loyalists"
	rfmNewCustomers      = "New Customers"
	rfmAtRisk            = "At Risk"
	rfmCannotLoseThem    = "Cannot Lose Them"
	rfmLost              = "Lost"
)

func analyzeRFM(customers []domain.CustomerRecord, cfg Config) []domain.RFMAnalysis {
	now := cfg.now()
	out := make([]domain.RFMAnalysis, 0, len(customers))

	for _, c := range customers {
		recency := int(recencyDays(now, c.LastBookingDate))
		frequency := c.TotalBookings
		monetary := c.TotalSpent

		r := recencyScore(recency, cfg.RecencyDays)
		f := ascendingScore(float64(frequency), intsToFloats(cfg.Frequency))
		m := ascendingScore(monetary, cfg.Monetary)

		out = append(out, domain.RFMAnalysis{
			CustomerID:     c.ID,
			Recency:        recency,
			Frequency:      frequency,
			Monetary:       monetary,
			RecencyScore:   r,
			FrequencyScore: f,
			MonetaryScore:  m,
			RFMScore:       fmt.Sprintf("%d%d%d", r, f, m),
			Segment:        rfmSegmentName(r + f + m),
		})
	}

	return out
}

// recencyScore reverses the ladder: the most recent booking scores 5.
func recencyScore(days int, thresholds []int) int {
	for i, t := range thresholds {
		if days <= t {
			return 5 - i
		}
	}
	return 1
}

func ascendingScore(value float64, thresholds []float64) int {
	for i, t := range thresholds {
		if value <= t {
			return i + 1
		}
	}
	return 5
}

func intsToFloats(in []int) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}

func rfmSegmentName(sum int) string {
	switch {
	case sum >= 13:
		return rfmChampions
	case sum >= 11:
		return rfmLoyalCustomers
	case sum >= 9:
		return rfmPotentialLoyalist
	case sum >= 7:
		return rfmNewCustomers
	case sum >= 5:
		return rfmAtRisk
	case sum >= 4:
		return rfmCannotLoseThem
	default:
		return rfmLost
	}
}
