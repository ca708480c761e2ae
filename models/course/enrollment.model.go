package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses
const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusDropped   = "dropped"
)

// Enrollment links a user to a course and tracks aggregate completion.
// The (user_id, course_id) pair is unique at the database so the
// check-then-insert in the enroll path cannot double-enroll under
// concurrent requests.
type Enrollment struct {
	gorm.Model
	UserID             uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID           uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`
	Status             string     `json:"status" gorm:"default:'active'"`
	ProgressPercentage float64    `json:"progress_percentage" gorm:"default:0"`
	CompletionDate     *time.Time `json:"completion_date"`
	CertificateURL     string     `json:"certificate_url"`
}
