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
	ErrSlugTaken            = errors.New("slug already taken")
	ErrCourseMissing        = errors.New("course not found")
	ErrCourseHasEnrollments = errors.New("course has enrollments")
)

// CourseInput is the admin create/update payload.
type CourseInput struct {
	Title               string   `json:"title" validate:"required"`
	Slug                string   `json:"slug" validate:"required"`
	Description         string   `json:"description" validate:"required"`
	ShortDescription    string   `json:"short_description"`
	ThumbnailURL        string   `json:"thumbnail_url"`
	VideoURL            string   `json:"video_url"`
	Level               string   `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Price               float64  `json:"price" validate:"gte=0"`
	DurationHours       int      `json:"duration_hours" validate:"gt=0"`
	InstructorName      string   `json:"instructor_name" validate:"required"`
	InstructorBio       string   `json:"instructor_bio"`
	InstructorAvatarURL string   `json:"instructor_avatar_url"`
	LearningObjectives  []string `json:"learning_objectives"`
	Prerequisites       []string `json:"prerequisites"`
	Tags                []string `json:"tags"`
	IsFeatured          bool     `json:"is_featured"`
	SortOrder           int      `json:"sort_order"`
}

// CreateCourse inserts a draft course. The slug pre-check is backstopped
// by the unique index, so a concurrent duplicate fails instead of racing.
func CreateCourse(db *gorm.DB, input CourseInput) (*courseModels.Course, error) {
	var existing courseModels.Course
	if err := db.Where("slug = ?", input.Slug).First(&existing).Error; err == nil {
		return nil, ErrSlugTaken
	}

	course := courseModels.Course{
		Title:               input.Title,
		Slug:                input.Slug,
		Description:         input.Description,
		ShortDescription:    input.ShortDescription,
		ThumbnailURL:        input.ThumbnailURL,
		VideoURL:            input.VideoURL,
		Level:               input.Level,
		Status:              courseModels.StatusDraft,
		Price:               input.Price,
		DurationHours:       input.DurationHours,
		InstructorName:      input.InstructorName,
		InstructorBio:       input.InstructorBio,
		InstructorAvatarURL: input.InstructorAvatarURL,
		LearningObjectives:  models.ToList(input.LearningObjectives),
		Prerequisites:       models.ToList(input.Prerequisites),
		Tags:                models.ToList(input.Tags),
		IsFeatured:          input.IsFeatured,
		SortOrder:           input.SortOrder,
	}
	if err := db.Create(&course).Error; err != nil {
		if err := db.Where("slug = ?", input.Slug).First(&existing).Error; err == nil {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes a course unless any enrollment references it.
// The catalog never cascades deletes.
func DeleteCourse(db *gorm.DB, courseID uint) error {
	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return ErrCourseMissing
	}

	var enrollments int64
	if err := db.Model(&courseModels.Enrollment{}).Where("course_id = ?", courseID).Count(&enrollments).Error; err != nil {
		return err
	}
	if enrollments > 0 {
		return ErrCourseHasEnrollments
	}

	return db.Delete(&course).Error
}

// GetCourseByID fetches a course regardless of its status.
func GetCourseByID(db *gorm.DB, courseID uint) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return nil, ErrCourseMissing
	}
	return &course, nil
}

// AdminGetCourseDetails fetches a single course in any status
func AdminGetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, err := GetCourseByID(database.Database.Db, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", toCourseResponse(*course))
}

// AdminCreateCourse creates a new draft course
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := CreateCourse(database.Database.Db, *reqData)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this slug already exists!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", toCourseResponse(*course))
}

// AdminUpdateCourse updates an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title              string   `json:"title"`
		Description        string   `json:"description"`
		ShortDescription   string   `json:"short_description"`
		ThumbnailURL       string   `json:"thumbnail_url"`
		Level              string   `json:"level"`
		Status             string   `json:"status"`
		Price              *float64 `json:"price"`
		DurationHours      int      `json:"duration_hours"`
		InstructorName     string   `json:"instructor_name"`
		InstructorBio      string   `json:"instructor_bio"`
		LearningObjectives []string `json:"learning_objectives"`
		Prerequisites      []string `json:"prerequisites"`
		Tags               []string `json:"tags"`
		IsFeatured         *bool    `json:"is_featured"`
		SortOrder          *int     `json:"sort_order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.ShortDescription != "" {
		course.ShortDescription = reqData.ShortDescription
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.DurationHours > 0 {
		course.DurationHours = reqData.DurationHours
	}
	if reqData.InstructorName != "" {
		course.InstructorName = reqData.InstructorName
	}
	if reqData.InstructorBio != "" {
		course.InstructorBio = reqData.InstructorBio
	}
	if reqData.LearningObjectives != nil {
		course.LearningObjectives = models.ToList(reqData.LearningObjectives)
	}
	if reqData.Prerequisites != nil {
		course.Prerequisites = models.ToList(reqData.Prerequisites)
	}
	if reqData.Tags != nil {
		course.Tags = models.ToList(reqData.Tags)
	}
	if reqData.IsFeatured != nil {
		course.IsFeatured = *reqData.IsFeatured
	}
	if reqData.SortOrder != nil {
		course.SortOrder = *reqData.SortOrder
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", toCourseResponse(course))
}

// AdminDeleteCourse deletes a course with no enrollments
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	if err := DeleteCourse(database.Database.Db, uint(courseID)); err != nil {
		switch {
		case errors.Is(err, ErrCourseMissing):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		case errors.Is(err, ErrCourseHasEnrollments):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course has enrollments and cannot be deleted!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetAllCourses lists courses in every status for admins
func AdminGetAllCourses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{})

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	result := make([]CourseResponse, len(courses))
	for i, course := range courses {
		result[i] = toCourseResponse(course)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
