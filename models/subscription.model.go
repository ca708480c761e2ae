package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription plans
const (
	PlanBasic      = "basic"
	PlanPremium    = "premium"
	PlanEnterprise = "enterprise"
)

// Subscription statuses
const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusInactive  = "inactive"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"
)

// Subscription mirrors a recurring plan held at the payment provider
type Subscription struct {
	gorm.Model
	UserID             uint       `json:"user_id" gorm:"index;not null"`
	ExternalID         string     `json:"external_id" gorm:"uniqueIndex;not null"` // provider subscription id
	Plan               string     `json:"plan" gorm:"not null"`
	Status             string     `json:"status" gorm:"default:'active'"`
	CurrentPeriodStart time.Time  `json:"current_period_start" gorm:"not null"`
	CurrentPeriodEnd   time.Time  `json:"current_period_end" gorm:"not null"`
	CancelAtPeriodEnd  bool       `json:"cancel_at_period_end" gorm:"default:false"`
	CancelledAt        *time.Time `json:"cancelled_at"`
	TrialStart         *time.Time `json:"trial_start"`
	TrialEnd           *time.Time `json:"trial_end"`
	PricePerMonth      float64    `json:"price_per_month" gorm:"not null"`
	DiscountPercentage float64    `json:"discount_percentage" gorm:"default:0"`
}
