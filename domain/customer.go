package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Income tiers as supplied by the upstream CRM.
const (
	IncomeTierLow      = "low"
	IncomeTierMedium   = "medium"
	IncomeTierHigh     = "high"
	IncomeTierVeryHigh = "very_high"
)

type CustomerRecord struct {
	ID       string `gorm:"column:id;primaryKey" json:"id"`
	TenantID string `gorm:"column:tenant_id;index" json:"tenant_id"`

	// demographics
	Age        int    `gorm:"column:age" json:"age"`
	Gender     string `gorm:"column:gender" json:"gender"`
	Location   string `gorm:"column:location" json:"location"`
	IncomeTier string `gorm:"column:income_tier" json:"income_tier"`

	// behavioral aggregates
	TotalBookings       int                         `gorm:"column:total_bookings" json:"total_bookings"`
	TotalSpent          float64                     `gorm:"column:total_spent" json:"total_spent"`
	AverageBookingValue float64                     `gorm:"column:average_booking_value" json:"average_booking_value"`
	LastBookingDate     time.Time                   `gorm:"column:last_booking_date" json:"last_booking_date"`
	FirstBookingDate    time.Time                   `gorm:"column:first_booking_date" json:"first_booking_date"`
	BookingFrequency    float64                     `gorm:"column:booking_frequency" json:"booking_frequency"`
	PreferredServices   datatypes.JSONSlice[string] `gorm:"column:preferred_services;type:jsonb" json:"preferred_services"`
	PreferredTimes      datatypes.JSONSlice[string] `gorm:"column:preferred_times;type:jsonb" json:"preferred_times"`
	CancellationRate    float64                     `gorm:"column:cancellation_rate" json:"cancellation_rate"`
	SatisfactionScore   float64                     `gorm:"column:satisfaction_score" json:"satisfaction_score"`

	// engagement aggregates
	WebsiteVisits      int `gorm:"column:website_visits" json:"website_visits"`
	EmailOpens         int `gorm:"column:email_opens" json:"email_opens"`
	SocialInteractions int `gorm:"column:social_interactions" json:"social_interactions"`
	LoyaltyPoints      int `gorm:"column:loyalty_points" json:"loyalty_points"`
	ReferralCount      int `gorm:"column:referral_count" json:"referral_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CustomerRecord) TableName() string {
	return "customer_records"
}
