package segmentation

import (
	"stayInsights/domain"
	"testing"
	"time"
)

func fixedClockConfig() Config {
	cfg := DefaultConfig()
	cfg.Now = func() time.Time { return testNow }
	return cfg
}

func TestAnalyzeRFM_ScoresAlwaysValid(t *testing.T) {
	cfg := fixedClockConfig()

	customers := []domain.CustomerRecord{}
	for i, c := range []struct {
		days     int
		bookings int
		spent    float64
	}{
		{0, 0, 0},
		{15, 2, 250},
		{75, 7, 1200},
		{400, 20, 9000},
		{181, 12, 2500},
	} {
		cust := testCustomer(string(rune('a' + i)))
		cust.LastBookingDate = testNow.AddDate(0, 0, -c.days)
		cust.TotalBookings = c.bookings
		cust.TotalSpent = c.spent
		customers = append(customers, cust)
	}

	for _, a := range analyzeRFM(customers, cfg) {
		for _, score := range []int{a.RecencyScore, a.FrequencyScore, a.MonetaryScore} {
			if score < 1 || score > 5 {
				t.Errorf("customer %s: score %d out of [1,5]", a.CustomerID, score)
			}
		}
		if len(a.RFMScore) != 3 {
			t.Errorf("customer %s: rfm_score %q is not 3 characters", a.CustomerID, a.RFMScore)
		}
		if a.Recency < 0 {
			t.Errorf("customer %s: negative recency %d", a.CustomerID, a.Recency)
		}
	}
}

func TestAnalyzeRFM_LostCustomer(t *testing.T) {
	cfg := fixedClockConfig()

	cust := testCustomer("lost")
	cust.TotalBookings = 1
	cust.TotalSpent = 50
	cust.LastBookingDate = testNow.AddDate(0, 0, -200)

	out := analyzeRFM([]domain.CustomerRecord{cust}, cfg)
	if len(out) != 1 {
		t.Fatalf("expected 1 analysis, got %d", len(out))
	}

	a := out[0]
	if a.RecencyScore != 1 || a.FrequencyScore != 1 || a.MonetaryScore != 1 {
		t.Errorf("expected scores 1/1/1, got %d/%d/%d", a.RecencyScore, a.FrequencyScore, a.MonetaryScore)
	}
	if a.RFMScore != "111" {
		t.Errorf("expected rfm_score \"111\", got %q", a.RFMScore)
	}
	if a.Segment != rfmLost {
		t.Errorf("expected segment %q, got %q", rfmLost, a.Segment)
	}
}

func TestRecencyScore_ReversedLadder(t *testing.T) {
	thresholds := []int{30, 60, 90, 180}

	tests := []struct {
		days int
		want int
	}{
		{0, 5},
		{30, 5},
		{31, 4},
		{60, 4},
		{90, 3},
		{180, 2},
		{181, 1},
		{500, 1},
	}

	for _, tt := range tests {
		if got := recencyScore(tt.days, thresholds); got != tt.want {
			t.Errorf("recencyScore(%d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestRFMSegmentName_SumLadder(t *testing.T) {
	tests := []struct {
		sum  int
		want string
	}{
		{15, rfmChampions},
		{14, rfmChampions},
		{13, rfmChampions},
		{12, rfmLoyalCustomers},
		{11, rfmLoyalCustomers},
		{10, rfmPotentialLoyalist},
		{9, rfmPotentialLoyalist},
		{8, rfmNewCustomers},
		{7, rfmNewCustomers},
		{6, rfmAtRisk},
		{5, rfmAtRisk},
		{4, rfmCannotLoseThem},
		{3, rfmLost},
	}

	for _, tt := range tests {
		if got := rfmSegmentName(tt.sum); got != tt.want {
			t.Errorf("rfmSegmentName(%d) = %q, want %q", tt.sum, got, tt.want)
		}
	}
}

func TestAscendingScore(t *testing.T) {
	thresholds := []float64{100, 500, 1000, 2500}

	tests := []struct {
		value float64
		want  int
	}{
		{0, 1},
		{100, 1},
		{101, 2},
		{500, 2},
		{999, 3},
		{2500, 4},
		{2501, 5},
	}

	for _, tt := range tests {
		if got := ascendingScore(tt.value, thresholds); got != tt.want {
			t.Errorf("ascendingScore(%v) = %d, want %d", tt.value, got, tt.want)
		}
	}
}
