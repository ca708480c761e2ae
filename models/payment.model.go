package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment statuses
const (
	PaymentStatusPending    = "pending"
	PaymentStatusProcessing = "processing"
	PaymentStatusCompleted  = "completed"
	PaymentStatusFailed     = "failed"
	PaymentStatusRefunded   = "refunded"
	PaymentStatusCancelled  = "cancelled"
)

// Payment methods
const (
	PaymentMethodStripe       = "stripe"
	PaymentMethodPaypal       = "paypal"
	PaymentMethodBankTransfer = "bank_transfer"
)

// Payment types
const (
	PaymentTypeCoursePurchase = "course_purchase"
	PaymentTypeMentorSession  = "mentor_session"
	PaymentTypeSubscription   = "subscription"
)

// Payment records a settled or in-flight charge against a user.
// PaymentIntentID carries a unique index so a retried confirmation
// is rejected instead of duplicating the row.
type Payment struct {
	gorm.Model
	UserID          uint           `json:"user_id" gorm:"index;not null"`
	PaymentIntentID string         `json:"payment_intent_id" gorm:"uniqueIndex;not null"`
	PaymentMethod   string         `json:"payment_method" gorm:"not null"`
	PaymentType     string         `json:"payment_type" gorm:"not null"`
	Status          string         `json:"status" gorm:"default:'pending'"`
	Amount          float64        `json:"amount" gorm:"not null"`
	Currency        string         `json:"currency" gorm:"default:'USD'"`
	Description     string         `json:"description"`
	Metadata        datatypes.JSON `json:"metadata"`
	CourseID        *uint          `json:"course_id" gorm:"index"`
	MentorBookingID *uint          `json:"mentor_booking_id"`
	SubscriptionID  *uint          `json:"subscription_id"`
	TransactionFee  float64        `json:"transaction_fee" gorm:"default:0"`
	NetAmount       float64        `json:"net_amount" gorm:"not null"`
	ReceiptURL      string         `json:"receipt_url"`
	RefundAmount    float64        `json:"refund_amount" gorm:"default:0"`
	RefundReason    string         `json:"refund_reason"`
	ProcessedAt     *time.Time     `json:"processed_at"`
}
