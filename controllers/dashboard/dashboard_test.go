package dashboardController

import (
	"fmt"
	"testing"
	"time"

	"techstep/database"
	"techstep/models"
	courseModels "techstep/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestBuildDashboardRollup(t *testing.T) {
	db := setupTestDB(t)
	userID := uint(7)

	course := courseModels.Course{
		Title:          "Go Basics",
		Slug:           "go-basics",
		Description:    "Learn Go",
		Level:          courseModels.LevelBeginner,
		Status:         courseModels.StatusPublished,
		DurationHours:  40,
		InstructorName: "Dana Whitfield",
	}
	require.NoError(t, db.Create(&course).Error)

	now := time.Now()
	require.NoError(t, db.Create(&courseModels.Enrollment{
		UserID:             userID,
		CourseID:           course.ID,
		Status:             courseModels.EnrollmentStatusCompleted,
		ProgressPercentage: 100,
		CompletionDate:     &now,
	}).Error)

	require.NoError(t, db.Create(&models.MentorBooking{
		UserID:          userID,
		MentorID:        1,
		SessionTitle:    "Mock interview",
		ScheduledDate:   now.Add(24 * time.Hour),
		DurationMinutes: 60,
		Status:          models.BookingStatusConfirmed,
		TotalAmount:     120,
	}).Error)

	require.NoError(t, db.Create(&models.Payment{
		UserID:          userID,
		PaymentIntentID: "pi_done",
		PaymentMethod:   models.PaymentMethodStripe,
		PaymentType:     models.PaymentTypeCoursePurchase,
		Status:          models.PaymentStatusCompleted,
		Amount:          2999,
		NetAmount:       2999,
		Description:     "Course purchase: Go Basics",
	}).Error)
	require.NoError(t, db.Create(&models.Payment{
		UserID:          userID,
		PaymentIntentID: "pi_failed",
		PaymentMethod:   models.PaymentMethodStripe,
		PaymentType:     models.PaymentTypeCoursePurchase,
		Status:          models.PaymentStatusFailed,
		Amount:          500,
		NetAmount:       500,
	}).Error)

	// Another user's data must not leak into the rollup
	require.NoError(t, db.Create(&models.Payment{
		UserID:          8,
		PaymentIntentID: "pi_other",
		PaymentMethod:   models.PaymentMethodStripe,
		PaymentType:     models.PaymentTypeCoursePurchase,
		Status:          models.PaymentStatusCompleted,
		Amount:          100,
		NetAmount:       100,
	}).Error)

	dash, err := BuildDashboard(db, userID)
	require.NoError(t, err)

	assert.EqualValues(t, 1, dash.TotalEnrollments)
	assert.EqualValues(t, 1, dash.CompletedCourses)
	assert.EqualValues(t, 1, dash.TotalBookings)
	assert.Equal(t, 2999.0, dash.TotalSpent)
	assert.Len(t, dash.Payments, 2)

	require.Len(t, dash.Enrollments, 1)
	assert.Equal(t, "Go Basics", dash.Enrollments[0].CourseTitle)

	assert.NotEmpty(t, dash.RecentActivity)
	assert.LessOrEqual(t, len(dash.RecentActivity), 5)
}

func TestBuildDashboardEmpty(t *testing.T) {
	db := setupTestDB(t)

	dash, err := BuildDashboard(db, 7)
	require.NoError(t, err)

	assert.Zero(t, dash.TotalEnrollments)
	assert.Zero(t, dash.TotalBookings)
	assert.Zero(t, dash.TotalSpent)
	assert.Empty(t, dash.RecentActivity)
	assert.NotNil(t, dash.Enrollments)
	assert.NotNil(t, dash.Payments)
}

func TestRecentActivityCapped(t *testing.T) {
	db := setupTestDB(t)
	userID := uint(7)

	for i := 0; i < 8; i++ {
		require.NoError(t, db.Create(&models.MentorBooking{
			UserID:          userID,
			MentorID:        1,
			SessionTitle:    fmt.Sprintf("Session %d", i),
			ScheduledDate:   time.Now().Add(time.Duration(i) * time.Hour),
			DurationMinutes: 60,
			Status:          models.BookingStatusPending,
			TotalAmount:     100,
		}).Error)
	}

	dash, err := BuildDashboard(db, userID)
	require.NoError(t, err)
	assert.Len(t, dash.RecentActivity, 5)
}
