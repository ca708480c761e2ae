package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Mentor is a bookable mentor profile linked to a user account
type Mentor struct {
	gorm.Model
	UserID          uint           `json:"user_id" gorm:"index;not null"`
	Title           string         `json:"title" gorm:"not null"`
	Company         string         `json:"company"`
	YearsExperience int            `json:"years_experience" gorm:"default:0"`
	Specialties     datatypes.JSON `json:"specialties"`
	Certifications  datatypes.JSON `json:"certifications"`
	Languages       datatypes.JSON `json:"languages"`
	HourlyRate      float64        `json:"hourly_rate" gorm:"not null"`
	Rating          float64        `json:"rating" gorm:"default:0"`
	RatingCount     int            `json:"rating_count" gorm:"default:0"`
	TotalSessions   int            `json:"total_sessions" gorm:"default:0"`
	Bio             string         `json:"bio"`
	Timezone        string         `json:"timezone"`
	Availability    datatypes.JSON `json:"availability"`
	IsFeatured      bool           `json:"is_featured" gorm:"default:false"`
	IsActive        bool           `json:"is_active" gorm:"default:true"`
	LinkedinURL     string         `json:"linkedin_url"`
}

// MentorBooking links a user and a mentor for a scheduled paid session
type MentorBooking struct {
	gorm.Model
	UserID             uint      `json:"user_id" gorm:"index;not null"`
	MentorID           uint      `json:"mentor_id" gorm:"index;not null"`
	SessionTitle       string    `json:"session_title" gorm:"not null"`
	SessionDescription string    `json:"session_description"`
	ScheduledDate      time.Time `json:"scheduled_date" gorm:"not null"`
	DurationMinutes    int       `json:"duration_minutes" gorm:"default:60"`
	Status             string    `json:"status" gorm:"default:'pending'"`
	MeetingURL         string    `json:"meeting_url"`
	MeetingNotes       string    `json:"meeting_notes"`
	MentorFeedback     string    `json:"mentor_feedback"`
	StudentFeedback    string    `json:"student_feedback"`
	Rating             *int      `json:"rating"` // 1-5 stars, set once the session is completed
	TotalAmount        float64   `json:"total_amount" gorm:"not null"`
	PaymentStatus      string    `json:"payment_status" gorm:"default:'pending'"`
}
