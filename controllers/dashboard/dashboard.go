package dashboardController

import (
	"sort"
	"time"

	"techstep/database"
	"techstep/middleware"
	"techstep/models"
	courseModels "techstep/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollmentSummary is an enrollment joined with its course title.
type EnrollmentSummary struct {
	EnrollmentID       uint       `json:"enrollment_id"`
	CourseID           uint       `json:"course_id"`
	CourseTitle        string     `json:"course_title"`
	Status             string     `json:"status"`
	ProgressPercentage float64    `json:"progress_percentage"`
	CompletionDate     *time.Time `json:"completion_date"`
	EnrolledAt         time.Time  `json:"enrolled_at"`
}

// ActivityItem is one entry in the recent-activity feed.
type ActivityItem struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Dashboard is the per-user rollup returned to the frontend.
type Dashboard struct {
	Enrollments      []EnrollmentSummary    `json:"enrollments"`
	Bookings         []models.MentorBooking `json:"bookings"`
	Payments         []models.Payment       `json:"payments"`
	TotalEnrollments int64                  `json:"total_enrollments"`
	CompletedCourses int64                  `json:"completed_courses"`
	TotalBookings    int64                  `json:"total_bookings"`
	TotalSpent       float64                `json:"total_spent"`
	RecentActivity   []ActivityItem         `json:"recent_activity"`
}

// BuildDashboard assembles the user's enrollments, bookings, payments
// and derived totals. TotalSpent counts completed payments only.
func BuildDashboard(db *gorm.DB, userID uint) (*Dashboard, error) {
	dash := &Dashboard{
		Enrollments: []EnrollmentSummary{},
		Bookings:    []models.MentorBooking{},
		Payments:    []models.Payment{},
	}

	var enrollments []courseModels.Enrollment
	if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	for _, enr := range enrollments {
		summary := EnrollmentSummary{
			EnrollmentID:       enr.ID,
			CourseID:           enr.CourseID,
			Status:             enr.Status,
			ProgressPercentage: enr.ProgressPercentage,
			CompletionDate:     enr.CompletionDate,
			EnrolledAt:         enr.CreatedAt,
		}
		var course courseModels.Course
		if err := db.Select("title").Where("id = ?", enr.CourseID).First(&course).Error; err == nil {
			summary.CourseTitle = course.Title
		}
		dash.Enrollments = append(dash.Enrollments, summary)
		if enr.Status == courseModels.EnrollmentStatusCompleted {
			dash.CompletedCourses++
		}
	}
	dash.TotalEnrollments = int64(len(dash.Enrollments))

	if err := db.Where("user_id = ?", userID).Order("scheduled_date desc").Find(&dash.Bookings).Error; err != nil {
		return nil, err
	}
	dash.TotalBookings = int64(len(dash.Bookings))

	if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&dash.Payments).Error; err != nil {
		return nil, err
	}
	for _, payment := range dash.Payments {
		if payment.Status == models.PaymentStatusCompleted {
			dash.TotalSpent += payment.Amount
		}
	}

	dash.RecentActivity = recentActivity(dash, 5)
	return dash, nil
}

func recentActivity(dash *Dashboard, limit int) []ActivityItem {
	items := []ActivityItem{}
	for _, enr := range dash.Enrollments {
		items = append(items, ActivityItem{
			Type:        "enrollment",
			Description: "Enrolled in " + enr.CourseTitle,
			OccurredAt:  enr.EnrolledAt,
		})
	}
	for _, booking := range dash.Bookings {
		items = append(items, ActivityItem{
			Type:        "booking",
			Description: "Booked session: " + booking.SessionTitle,
			OccurredAt:  booking.CreatedAt,
		})
	}
	for _, payment := range dash.Payments {
		items = append(items, ActivityItem{
			Type:        "payment",
			Description: payment.Description,
			OccurredAt:  payment.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].OccurredAt.After(items[j].OccurredAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// GetDashboard returns the authenticated user's dashboard rollup
func GetDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	dash, err := BuildDashboard(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build dashboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", dash)
}
