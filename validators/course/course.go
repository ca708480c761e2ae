package courseValidator

import (
	"strconv"
	"strings"

	courseController "techstep/controllers/course"
	"techstep/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id route param
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// EnrollmentID validates the :id route param for enrollment routes
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentIDStr := strings.TrimSpace(c.Params("id"))
		if enrollmentIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID is required!", nil)
		}

		enrollmentID, err := strconv.Atoi(enrollmentIDStr)
		if err != nil || enrollmentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		c.Locals("enrollmentID", enrollmentID)
		return c.Next()
	}
}

// CreateCourseAdmin validates the admin course creation request
func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.CourseInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Slug = strings.TrimSpace(reqData.Slug)

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseAdmin validates the admin course update request
func UpdateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
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
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Level != "" {
			switch reqData.Level {
			case "beginner", "intermediate", "advanced":
			default:
				errors["level"] = "Invalid course level!"
			}
		}
		if reqData.Status != "" {
			switch reqData.Status {
			case "draft", "published", "archived":
			default:
				errors["status"] = "Invalid course status!"
			}
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// Progress validates the lesson progress payload
func Progress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.ProgressUpdate)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.LessonID = strings.TrimSpace(reqData.LessonID)

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
