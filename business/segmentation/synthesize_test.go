package segmentation

import (
	"reflect"
	"stayInsights/domain"
	"testing"
)

func TestBuildSegments_GroupsByLabel(t *testing.T) {
	cfg := fixedClockConfig()

	customers := make([]domain.CustomerRecord, 6)
	for i := range customers {
		customers[i] = testCustomer(string(rune('a' + i)))
	}
	labels := []int{1, 0, 1, -1, 0, 1}

	segments := buildSegments(labels, customers, cfg)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}

	if segments[0].SegmentID != 0 || segments[1].SegmentID != 1 {
		t.Errorf("segments not ordered by label: %d, %d", segments[0].SegmentID, segments[1].SegmentID)
	}
	if segments[0].Size != 2 || segments[1].Size != 3 {
		t.Errorf("unexpected sizes: %d, %d", segments[0].Size, segments[1].Size)
	}
	if !reflect.DeepEqual(segments[1].CustomerIDs, []string{"a", "c", "f"}) {
		t.Errorf("unexpected members of segment 1: %v", segments[1].CustomerIDs)
	}

	// Percentages are over the whole batch, noise included.
	if segments[1].Percentage != 50.0 {
		t.Errorf("expected 50.0%% for 3 of 6, got %v", segments[1].Percentage)
	}
}

func TestSegmentCharacteristics_Averages(t *testing.T) {
	a := testCustomer("a")
	a.Age = 30
	a.TotalSpent = 1000
	a.BookingFrequency = 2
	a.SatisfactionScore = 4
	a.IncomeTier = domain.IncomeTierHigh

	b := testCustomer("b")
	b.Age = 50
	b.TotalSpent = 3000
	b.BookingFrequency = 1
	b.SatisfactionScore = 5
	b.IncomeTier = domain.IncomeTierHigh

	chars := segmentCharacteristics([]domain.CustomerRecord{a, b})
	if chars.AvgAge != 40 {
		t.Errorf("expected avg age 40, got %v", chars.AvgAge)
	}
	if chars.AvgSpending != 2000 {
		t.Errorf("expected avg spending 2000, got %v", chars.AvgSpending)
	}
	if chars.BookingFrequency != 1.5 {
		t.Errorf("expected booking frequency 1.5, got %v", chars.BookingFrequency)
	}
	if chars.SatisfactionScore != 4.5 {
		t.Errorf("expected satisfaction 4.5, got %v", chars.SatisfactionScore)
	}
	if chars.AvgIncome != domain.IncomeTierHigh {
		t.Errorf("expected modal tier high, got %q", chars.AvgIncome)
	}
}

func TestTopTags_FrequencyThenFirstSeen(t *testing.T) {
	lists := [][]string{
		{"spa", "dining"},
		{"dining", "pool"},
		{"dining", "spa", "gym"},
		{"pool"},
	}

	got := topTags(lists, 3)
	want := []string{"dining", "spa", "pool"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("topTags = %v, want %v", got, want)
	}
}

func TestTopTags_TiesKeepFirstEncountered(t *testing.T) {
	lists := [][]string{
		{"golf", "spa"},
		{"spa", "golf"},
	}

	got := topTags(lists, 1)
	if !reflect.DeepEqual(got, []string{"golf"}) {
		t.Errorf("tie should keep first-encountered tag, got %v", got)
	}
}

func TestSegmentName_DecisionTree(t *testing.T) {
	tests := []struct {
		name  string
		spend float64
		freq  float64
		sat   float64
		want  string
	}{
		{"vip", 2500, 2.5, 4.5, "VIP Champions"},
		{"high value", 1500, 2.0, 3.5, "High Value Regulars"},
		{"enthusiast", 600, 1.2, 4.5, "Loyal Enthusiasts"},
		{"dormant", 200, 0.2, 3.5, "Dormant Guests"},
		{"at risk", 600, 0.8, 2.5, "At Risk Guests"},
		{"mid market", 700, 1.0, 3.5, "Steady Mid-Market"},
	}

	for _, tt := range tests {
		chars := domain.SegmentCharacteristics{
			AvgSpending:       tt.spend,
			BookingFrequency:  tt.freq,
			SatisfactionScore: tt.sat,
		}
		if got := segmentName(chars); got != tt.want {
			t.Errorf("%s: segmentName = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSegmentValue_RetentionAndBounds(t *testing.T) {
	cfg := fixedClockConfig()

	recent := testCustomer("recent")
	recent.LastBookingDate = testNow.AddDate(0, 0, -10)
	stale := testCustomer("stale")
	stale.LastBookingDate = testNow.AddDate(0, 0, -365)

	group := []domain.CustomerRecord{recent, stale}
	chars := segmentCharacteristics(group)
	value := segmentValue(group, chars, cfg, testNow)

	if value.RetentionRate != 0.5 {
		t.Errorf("expected retention 0.5, got %v", value.RetentionRate)
	}
	if value.AvgLifetimeValue != chars.AvgSpending {
		t.Errorf("lifetime value should track avg spending, got %v", value.AvgLifetimeValue)
	}
	for _, v := range []float64{value.GrowthPotential, value.Profitability} {
		if v < 0 || v > 1 {
			t.Errorf("value metric %v out of [0,1]", v)
		}
	}
}

func TestSegmentRecommendations_Thresholds(t *testing.T) {
	chars := domain.SegmentCharacteristics{
		AvgSpending:       2000,
		BookingFrequency:  0.5,
		SatisfactionScore: 3.0,
	}

	recs := segmentRecommendations(chars)
	if len(recs) != 5 {
		t.Fatalf("expected 5 recommendations, got %d: %v", len(recs), recs)
	}
	if recs[0] != "Offer premium suite upgrades and exclusive packages" {
		t.Errorf("unexpected first recommendation: %q", recs[0])
	}

	// Every segment gets the two generic recommendations.
	generic := segmentRecommendations(domain.SegmentCharacteristics{
		AvgSpending:       900,
		BookingFrequency:  1.2,
		SatisfactionScore: 4.0,
	})
	if len(generic) != 2 {
		t.Errorf("expected only generic recommendations, got %v", generic)
	}
}
