package segmentation

import (
	"sort"
	"stayInsights/domain"
	"time"
)

var segmentDescriptions = map[string]string{
	"VIP Champions":       "Top-tier guests with premium spend, frequent stays and excellent satisfaction.",
	"High Value Regulars": "Reliable high spenders who book often and respond well to direct offers.",
	"Loyal Enthusiasts":   "Very satisfied repeat guests with room to grow their spend.",
	"Dormant Guests":      "Infrequent, low-spend guests who have drifted away from the property.",
	"At Risk Guests":      "Guests whose satisfaction has dropped below a safe level.",
	"Steady Mid-Market":   "Average guests forming the stable core of the customer base.",
}

// buildSegments aggregates every non-noise cluster into a CustomerSegment.
// All statistics come from the raw records, not normalized coordinates.
func buildSegments(labels []int, customers []domain.CustomerRecord, cfg Config) []domain.CustomerSegment {
	now := cfg.now()

	members := make(map[int][]domain.CustomerRecord)
	order := make([]int, 0)
	for i, l := range labels {
		if l < 0 {
			continue
		}
		if _, seen := members[l]; !seen {
			order = append(order, l)
		}
		members[l] = append(members[l], customers[i])
	}
	sort.Ints(order)

	total := float64(len(customers))
	segments := make([]domain.CustomerSegment, 0, len(order))

	for _, label := range order {
		group := members[label]
		chars := segmentCharacteristics(group)
		name := segmentName(chars)

		ids := make([]string, 0, len(group))
		for _, c := range group {
			ids = append(ids, c.ID)
		}

		segments = append(segments, domain.CustomerSegment{
			SegmentID:       label,
			Name:            name,
			Description:     segmentDescriptions[name],
			Size:            len(group),
			Percentage:      round1(float64(len(group)) / total * 100),
			Characteristics: chars,
			Value:           segmentValue(group, chars, cfg, now),
			Recommendations: segmentRecommendations(chars),
			CustomerIDs:     ids,
		})
	}

	return segments
}

func segmentCharacteristics(group []domain.CustomerRecord) domain.SegmentCharacteristics {
	n := float64(len(group))

	var age, spend, freq, sat float64
	tierCounts := map[string]int{}
	tierOrder := make([]string, 0, 4)
	for _, c := range group {
		age += float64(c.Age)
		spend += c.TotalSpent
		freq += c.BookingFrequency
		sat += c.SatisfactionScore
		if _, seen := tierCounts[c.IncomeTier]; !seen {
			tierOrder = append(tierOrder, c.IncomeTier)
		}
		tierCounts[c.IncomeTier]++
	}

	modalTier := ""
	bestCount := 0
	for _, tier := range tierOrder {
		if tierCounts[tier] > bestCount {
			bestCount = tierCounts[tier]
			modalTier = tier
		}
	}

	services := make([][]string, 0, len(group))
	times := make([][]string, 0, len(group))
	for _, c := range group {
		services = append(services, c.PreferredServices)
		times = append(times, c.PreferredTimes)
	}

	return domain.SegmentCharacteristics{
		AvgAge:            age / n,
		AvgIncome:         modalTier,
		AvgSpending:       spend / n,
		BookingFrequency:  round1(freq / n),
		TopServices:       topTags(services, 3),
		PreferredTimes:    topTags(times, 3),
		SatisfactionScore: round1(sat / n),
	}
}

// topTags counts tags across all members and returns the k most frequent,
// ties broken by first-encountered order.
func topTags(lists [][]string, k int) []string {
	counts := map[string]int{}
	order := make([]string, 0)
	for _, list := range lists {
		for _, tag := range list {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > k {
		order = order[:k]
	}
	return order
}

// segmentName is a fixed decision tree over average spend, frequency and
// satisfaction. Thresholds are business policy, not fitted values.
func segmentName(chars domain.SegmentCharacteristics) string {
	spend := chars.AvgSpending
	freq := chars.BookingFrequency
	sat := chars.SatisfactionScore

	switch {
	case spend > 2000 && freq > 2 && sat > 4:
		return "VIP Champions"
	case spend > 1000 && freq > 1.5:
		return "High Value Regulars"
	case sat > 4 && freq > 1:
		return "Loyal Enthusiasts"
	case spend < 500 && freq < 0.5:
		return "Dormant Guests"
	case sat < 3:
		return "At Risk Guests"
	default:
		return "Steady Mid-Market"
	}
}

// segmentValue derives heuristic business metrics. LTV is proxied by
// average spend, retention by bookings inside the config window, growth
// and profitability by normalized products against config denominators.
func segmentValue(group []domain.CustomerRecord, chars domain.SegmentCharacteristics, cfg Config, now time.Time) domain.SegmentValue {
	cutoff := now.Add(-cfg.RetentionWindow)
	retained := 0
	for _, c := range group {
		if c.LastBookingDate.After(cutoff) {
			retained++
		}
	}

	growthDenom := cfg.GrowthFrequencyDenom
	if growthDenom <= 0 {
		growthDenom = defaultGrowthFrequencyDenom
	}
	profitDenom := cfg.ProfitSpendDenom
	if profitDenom <= 0 {
		profitDenom = defaultProfitSpendDenom
	}

	return domain.SegmentValue{
		AvgLifetimeValue: chars.AvgSpending,
		RetentionRate:    float64(retained) / float64(len(group)),
		GrowthPotential:  clamp01((chars.SatisfactionScore / 5) * (chars.BookingFrequency / growthDenom)),
		Profitability:    clamp01((chars.AvgSpending / profitDenom) * (chars.SatisfactionScore / 5)),
	}
}

func segmentRecommendations(chars domain.SegmentCharacteristics) []string {
	recs := make([]string, 0, 6)

	if chars.AvgSpending > 1500 {
		recs = append(recs, "Offer premium suite upgrades and exclusive packages")
	}
	if chars.BookingFrequency < 1 {
		recs = append(recs, "Enroll this group in the loyalty program with a points booster")
	}
	if chars.SatisfactionScore < 3.5 {
		recs = append(recs, "Prioritize service-quality follow-ups for this group")
	}
	if chars.AvgSpending < 800 && chars.BookingFrequency >= 1 {
		recs = append(recs, "Promote mid-tier upsell opportunities at booking time")
	}

	recs = append(recs,
		"Personalize email campaigns with segment-specific offers",
		"Review segment performance after the next segmentation run",
	)

	return recs
}
