package controllers

import (
	"errors"

	"techstep/database"
	"techstep/middleware"
	"techstep/models"
	courseModels "techstep/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	ErrAlreadyEnrolled   = errors.New("already enrolled")
	ErrCourseUnavailable = errors.New("course unavailable")
)

// Mail delivers enrollment confirmations when set from main.
var Mail interface {
	SendEnrollmentEmail(email, name, courseTitle string)
}

// EnrollUser creates an enrollment and bumps the course counter in one
// transaction. The course must be published; a duplicate (user, course)
// pair is rejected by the pre-check and backstopped by the unique index.
func EnrollUser(db *gorm.DB, userID, courseID uint) (*courseModels.Enrollment, error) {
	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return nil, ErrCourseMissing
	}
	if course.Status != courseModels.StatusPublished {
		return nil, ErrCourseUnavailable
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   courseModels.EnrollmentStatusActive,
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		var existing courseModels.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
			return ErrAlreadyEnrolled
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		return tx.Model(&courseModels.Course{}).Where("id = ?", courseID).
			UpdateColumn("enrollment_count", gorm.Expr("enrollment_count + ?", 1)).Error
	})
	if txErr != nil {
		if errors.Is(txErr, ErrAlreadyEnrolled) {
			return nil, ErrAlreadyEnrolled
		}
		// Unique-index violation means a concurrent enroll won the race
		var existing courseModels.Enrollment
		if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
			return nil, ErrAlreadyEnrolled
		}
		return nil, txErr
	}

	return &enrollment, nil
}

// EnrollInCourse enrolls the authenticated user in a published course
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	enrollment, err := EnrollUser(database.Database.Db, userID, uint(courseID))
	if err != nil {
		switch {
		case errors.Is(err, ErrCourseMissing):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		case errors.Is(err, ErrCourseUnavailable):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course is not open for enrollment!", nil)
		case errors.Is(err, ErrAlreadyEnrolled):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
		}
	}

	if Mail != nil {
		var user models.User
		var course courseModels.Course
		if database.Database.Db.Where("id = ?", userID).First(&user).Error == nil &&
			database.Database.Db.Where("id = ?", courseID).First(&course).Error == nil {
			Mail.SendEnrollmentEmail(user.Email, user.FullName, course.Title)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the authenticated user's enrollments
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Enrollment{}).Where("user_id = ?", userID)

	var total int64
	db.Count(&total)

	var enrollments []courseModels.Enrollment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
