package controllers

import (
	"strings"

	"techstep/database"
	"techstep/middleware"
	"techstep/models"
	courseModels "techstep/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CourseResponse is a course with its JSON list columns parsed back to
// ordered lists. Malformed stored values come back as empty lists.
type CourseResponse struct {
	courseModels.Course
	LearningObjectives []string `json:"learning_objectives"`
	Prerequisites      []string `json:"prerequisites"`
	Tags               []string `json:"tags"`
}

func toCourseResponse(c courseModels.Course) CourseResponse {
	return CourseResponse{
		Course:             c,
		LearningObjectives: models.ParseList(c.LearningObjectives),
		Prerequisites:      models.ParseList(c.Prerequisites),
		Tags:               models.ParseList(c.Tags),
	}
}

// CatalogFilter narrows the published-course listing.
type CatalogFilter struct {
	Search   string
	Level    string
	Featured *bool
	Page     int
	Limit    int
}

// ListCourses returns published courses matching the filter plus the
// total match count. Search is a case-insensitive substring match over
// title, description and instructor name.
func ListCourses(db *gorm.DB, f CatalogFilter) ([]courseModels.Course, int64, error) {
	query := db.Model(&courseModels.Course{}).Where("status = ?", courseModels.StatusPublished)

	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(instructor_name) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if f.Level != "" {
		query = query.Where("level = ?", f.Level)
	}
	if f.Featured != nil {
		query = query.Where("is_featured = ?", *f.Featured)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	limit := f.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var courses []courseModels.Course
	err := query.Offset((page - 1) * limit).Limit(limit).
		Order("sort_order asc, created_at desc").
		Find(&courses).Error
	return courses, total, err
}

// GetAllCourses lists published courses with optional search and filters
func GetAllCourses(c *fiber.Ctx) error {
	filter := CatalogFilter{
		Search: c.Query("search"),
		Level:  c.Query("level"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
	}
	if featured := c.Query("featured"); featured != "" {
		val := featured == "true" || featured == "1"
		filter.Featured = &val
	}

	courses, total, err := ListCourses(database.Database.Db, filter)
	if err != nil {
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
			"page":  filter.Page,
			"limit": filter.Limit,
		},
	})
}

// GetCourseDetails fetches a single published course by id
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND status = ?", courseID, courseModels.StatusPublished).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", toCourseResponse(course))
}
