package controllers

import (
	"errors"
	"time"

	"techstep/database"
	"techstep/middleware"
	"techstep/models"
	courseModels "techstep/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var ErrEnrollmentMissing = errors.New("enrollment not found")

// ProgressUpdate is the per-lesson payload.
type ProgressUpdate struct {
	LessonID         string   `json:"lesson_id" validate:"required"`
	LessonTitle      string   `json:"lesson_title"`
	Completed        bool     `json:"completed"`
	TimeSpentMinutes int      `json:"time_spent_minutes" validate:"gte=0"`
	QuizScore        *float64 `json:"quiz_score"`
	Notes            string   `json:"notes"`
}

// RecordProgress upserts the lesson's progress row and recomputes the
// enrollment's completion percentage over its recorded lessons. Reaching
// 100% transitions the enrollment to completed and stamps the date; the
// transition is one-way. The whole update is idempotent per lesson.
func RecordProgress(db *gorm.DB, enrollmentID uint, upd ProgressUpdate) (*courseModels.Progress, *courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		return nil, nil, ErrEnrollmentMissing
	}

	var progress courseModels.Progress

	txErr := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("enrollment_id = ? AND lesson_id = ?", enrollmentID, upd.LessonID).First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = courseModels.Progress{
				EnrollmentID: enrollmentID,
				LessonID:     upd.LessonID,
			}
		} else if err != nil {
			return err
		}

		if upd.LessonTitle != "" {
			progress.LessonTitle = upd.LessonTitle
		}
		progress.TimeSpentMinutes = upd.TimeSpentMinutes
		if upd.QuizScore != nil {
			progress.QuizScore = upd.QuizScore
		}
		if upd.Notes != "" {
			progress.Notes = upd.Notes
		}
		if upd.Completed && !progress.Completed {
			now := time.Now()
			progress.Completed = true
			progress.CompletionDate = &now
		} else if !upd.Completed {
			progress.Completed = false
			progress.CompletionDate = nil
		}

		if err := tx.Save(&progress).Error; err != nil {
			return err
		}

		// Percentage is over the lessons recorded so far, not the
		// course's full lesson catalog.
		var total, completed int64
		if err := tx.Model(&courseModels.Progress{}).Where("enrollment_id = ?", enrollmentID).Count(&total).Error; err != nil {
			return err
		}
		if err := tx.Model(&courseModels.Progress{}).Where("enrollment_id = ? AND completed = ?", enrollmentID, true).Count(&completed).Error; err != nil {
			return err
		}

		percentage := 0.0
		if total > 0 {
			percentage = float64(completed) / float64(total) * 100
		}

		enrollment.ProgressPercentage = percentage
		if percentage >= 100 && enrollment.Status != courseModels.EnrollmentStatusCompleted {
			now := time.Now()
			enrollment.Status = courseModels.EnrollmentStatusCompleted
			enrollment.CompletionDate = &now
		}

		return tx.Save(&enrollment).Error
	})
	if txErr != nil {
		return nil, nil, txErr
	}

	return &progress, &enrollment, nil
}

// UpdateProgress upserts lesson progress for one of the user's enrollments
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	reqData, ok := c.Locals("validatedProgress").(*ProgressUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Owner-or-admin gate
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}
	if enrollment.UserID != userID {
		role, _ := c.Locals("userRole").(string)
		if role != models.RoleAdmin {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this enrollment!", nil)
		}
	}

	progress, updated, err := RecordProgress(database.Database.Db, uint(enrollmentID), *reqData)
	if err != nil {
		if errors.Is(err, ErrEnrollmentMissing) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", fiber.Map{
		"progress":            progress,
		"progress_percentage": updated.ProgressPercentage,
		"enrollment_status":   updated.Status,
		"completion_date":     updated.CompletionDate,
	})
}

// GetProgress lists progress rows for one of the user's enrollments
func GetProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}
	if enrollment.UserID != userID {
		role, _ := c.Locals("userRole").(string)
		if role != models.RoleAdmin {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this enrollment!", nil)
		}
	}

	var records []courseModels.Progress
	if err := database.Database.Db.Where("enrollment_id = ?", enrollmentID).Order("created_at asc").Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment": enrollment,
		"records":    records,
	})
}
