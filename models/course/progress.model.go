package course

import (
	"time"

	"gorm.io/gorm"
)

// Progress is a per-lesson record under an enrollment, upserted by
// lesson id. One row per (enrollment, lesson).
type Progress struct {
	gorm.Model
	EnrollmentID     uint       `json:"enrollment_id" gorm:"not null;uniqueIndex:idx_enrollment_lesson"`
	LessonID         string     `json:"lesson_id" gorm:"not null;uniqueIndex:idx_enrollment_lesson"`
	LessonTitle      string     `json:"lesson_title"`
	Completed        bool       `json:"completed" gorm:"default:false"`
	CompletionDate   *time.Time `json:"completion_date"`
	TimeSpentMinutes int        `json:"time_spent_minutes" gorm:"default:0"`
	QuizScore        *float64   `json:"quiz_score"`
	Notes            string     `json:"notes"`
}
