package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Course statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Course represents a sellable learning course. The slug carries a unique
// index so concurrent creates with the same slug fail instead of racing.
type Course struct {
	gorm.Model
	Title               string         `json:"title" gorm:"not null;index"`
	Slug                string         `json:"slug" gorm:"uniqueIndex;not null"`
	Description         string         `json:"description" gorm:"not null"`
	ShortDescription    string         `json:"short_description"`
	ThumbnailURL        string         `json:"thumbnail_url"`
	VideoURL            string         `json:"video_url"`
	Level               string         `json:"level" gorm:"not null"`
	Status              string         `json:"status" gorm:"default:'draft'"`
	Price               float64        `json:"price" gorm:"default:0"`
	DurationHours       int            `json:"duration_hours" gorm:"not null"`
	InstructorName      string         `json:"instructor_name" gorm:"not null"`
	InstructorBio       string         `json:"instructor_bio"`
	InstructorAvatarURL string         `json:"instructor_avatar_url"`
	LearningObjectives  datatypes.JSON `json:"learning_objectives"`
	Prerequisites       datatypes.JSON `json:"prerequisites"`
	Tags                datatypes.JSON `json:"tags"`
	IsFeatured          bool           `json:"is_featured" gorm:"default:false"`
	SortOrder           int            `json:"sort_order" gorm:"default:0"`
	EnrollmentCount     int            `json:"enrollment_count" gorm:"default:0"`
	Rating              float64        `json:"rating" gorm:"default:0"`
	RatingCount         int            `json:"rating_count" gorm:"default:0"`
}
