package segmentation

import (
	"stayInsights/domain"
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func testCustomer(id string) domain.CustomerRecord {
	return domain.CustomerRecord{
		ID:                  id,
		Age:                 40,
		IncomeTier:          domain.IncomeTierHigh,
		TotalBookings:       6,
		TotalSpent:          1200,
		AverageBookingValue: 200,
		LastBookingDate:     testNow.AddDate(0, 0, -20),
		BookingFrequency:    1.5,
		CancellationRate:    0.1,
		SatisfactionScore:   4.2,
		WebsiteVisits:       30,
		LoyaltyPoints:       500,
		ReferralCount:       2,
	}
}

func TestBuildFeatureVector_OrderAndLength(t *testing.T) {
	v := buildFeatureVector(testCustomer("c1"), testNow)

	if len(v) != len(featureOrder) {
		t.Fatalf("expected %d features, got %d", len(featureOrder), len(v))
	}
	if v[0] != 1200 {
		t.Errorf("total_spent should be first, got %v", v[0])
	}
	if v[9] != 3.0 {
		t.Errorf("income tier 'high' should encode to 3, got %v", v[9])
	}
	if v[10] != 20 {
		t.Errorf("recency should be 20 days, got %v", v[10])
	}
}

func TestEncodeIncomeTier(t *testing.T) {
	tests := []struct {
		tier string
		want float64
	}{
		{domain.IncomeTierLow, 1},
		{domain.IncomeTierMedium, 2},
		{domain.IncomeTierHigh, 3},
		{domain.IncomeTierVeryHigh, 4},
		{"unknown", 2},
		{"", 2},
	}

	for _, tt := range tests {
		if got := encodeIncomeTier(tt.tier); got != tt.want {
			t.Errorf("encodeIncomeTier(%q) = %v, want %v", tt.tier, got, tt.want)
		}
	}
}

func TestRecencyDays_NeverNegative(t *testing.T) {
	if got := recencyDays(testNow, testNow.AddDate(0, 0, 5)); got != 0 {
		t.Errorf("future bookings should clamp to 0, got %v", got)
	}
	if got := recencyDays(testNow, time.Time{}); got != 0 {
		t.Errorf("zero time should clamp to 0, got %v", got)
	}
}

func TestPrepareFeatures_Subset(t *testing.T) {
	customers := []domain.CustomerRecord{testCustomer("c1"), testCustomer("c2")}

	vectors, names, err := prepareFeatures(customers, []string{FeatureAge, FeatureTotalSpent}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != FeatureAge {
		t.Fatalf("unexpected names: %v", names)
	}
	if len(vectors) != 2 || len(vectors[0]) != 2 {
		t.Fatalf("unexpected vector shape: %v", vectors)
	}
	if vectors[0][0] != 40 || vectors[0][1] != 1200 {
		t.Errorf("subset order not honored: %v", vectors[0])
	}
}

func TestPrepareFeatures_UnknownFeature(t *testing.T) {
	_, _, err := prepareFeatures([]domain.CustomerRecord{testCustomer("c1")}, []string{"shoe_size"}, testNow)
	if err == nil {
		t.Fatal("expected error for unknown feature, got nil")
	}
}

func TestPrepareFeatures_PreservesInputOrder(t *testing.T) {
	a := testCustomer("a")
	a.TotalSpent = 1
	b := testCustomer("b")
	b.TotalSpent = 2

	vectors, _, err := prepareFeatures([]domain.CustomerRecord{a, b}, nil, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vectors[0][0] != 1 || vectors[1][0] != 2 {
		t.Errorf("vectors not in input order: %v %v", vectors[0][0], vectors[1][0])
	}
}
