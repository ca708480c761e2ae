package mentorController

import (
	"fmt"
	"testing"
	"time"

	"techstep/database"
	"techstep/models"

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

func seedMentor(t *testing.T, db *gorm.DB, hourlyRate float64, active bool) models.Mentor {
	t.Helper()

	mentor := models.Mentor{
		UserID:     99,
		Title:      "Staff Engineer",
		Company:    "Acme",
		HourlyRate: hourlyRate,
		IsActive:   active,
		Timezone:   "UTC",
	}
	require.NoError(t, db.Create(&mentor).Error)
	return mentor
}

func seedBooking(t *testing.T, db *gorm.DB, mentorID uint, status string) models.MentorBooking {
	t.Helper()

	booking := models.MentorBooking{
		UserID:          7,
		MentorID:        mentorID,
		SessionTitle:    "Code review session",
		ScheduledDate:   time.Now().Add(48 * time.Hour),
		DurationMinutes: 60,
		Status:          status,
		TotalAmount:     150,
	}
	require.NoError(t, db.Create(&booking).Error)
	return booking
}

func TestCreateBookingAmount(t *testing.T) {
	db := setupTestDB(t)
	mentor := seedMentor(t, db, 120, true)

	booking, err := CreateBooking(db, 7, BookingInput{
		MentorID:        mentor.ID,
		SessionTitle:    "System design review",
		ScheduledDate:   time.Now().Add(24 * time.Hour),
		DurationMinutes: 90,
	}, 60)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, 180.0, booking.TotalAmount)
}

func TestCreateBookingDefaultDuration(t *testing.T) {
	db := setupTestDB(t)
	mentor := seedMentor(t, db, 120, true)

	booking, err := CreateBooking(db, 7, BookingInput{
		MentorID:      mentor.ID,
		SessionTitle:  "Career chat",
		ScheduledDate: time.Now().Add(24 * time.Hour),
	}, 60)
	require.NoError(t, err)
	assert.Equal(t, 60, booking.DurationMinutes)
	assert.Equal(t, 120.0, booking.TotalAmount)
}

func TestCreateBookingInactiveMentor(t *testing.T) {
	db := setupTestDB(t)
	mentor := seedMentor(t, db, 120, false)

	_, err := CreateBooking(db, 7, BookingInput{
		MentorID:      mentor.ID,
		SessionTitle:  "Career chat",
		ScheduledDate: time.Now().Add(24 * time.Hour),
	}, 60)
	require.ErrorIs(t, err, ErrMentorMissing)
}

func TestTransitionBookingLifecycle(t *testing.T) {
	db := setupTestDB(t)
	mentor := seedMentor(t, db, 120, true)
	booking := seedBooking(t, db, mentor.ID, models.BookingStatusPending)

	updated, err := TransitionBooking(db, booking.ID, models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)

	updated, err = TransitionBooking(db, booking.ID, models.BookingStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, updated.Status)

	// Completion bumps the mentor's session counter
	var refreshed models.Mentor
	require.NoError(t, db.Where("id = ?", mentor.ID).First(&refreshed).Error)
	assert.Equal(t, 1, refreshed.TotalSessions)
}

func TestTransitionBookingRejectsInvalidMoves(t *testing.T) {
	db := setupTestDB(t)
	mentor := seedMentor(t, db, 120, true)

	pending := seedBooking(t, db, mentor.ID, models.BookingStatusPending)
	_, err := TransitionBooking(db, pending.ID, models.BookingStatusCompleted)
	require.ErrorIs(t, err, ErrBadTransition)

	completed := seedBooking(t, db, mentor.ID, models.BookingStatusCompleted)
	_, err = TransitionBooking(db, completed.ID, models.BookingStatusConfirmed)
	require.ErrorIs(t, err, ErrBadTransition)
	_, err = TransitionBooking(db, completed.ID, models.BookingStatusCancelled)
	require.ErrorIs(t, err, ErrBadTransition)

	cancelled := seedBooking(t, db, mentor.ID, models.BookingStatusCancelled)
	_, err = TransitionBooking(db, cancelled.ID, models.BookingStatusConfirmed)
	require.ErrorIs(t, err, ErrBadTransition)
}

func TestTransitionBookingCancellation(t *testing.T) {
	db := setupTestDB(t)
	mentor := seedMentor(t, db, 120, true)

	pending := seedBooking(t, db, mentor.ID, models.BookingStatusPending)
	updated, err := TransitionBooking(db, pending.ID, models.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)

	confirmed := seedBooking(t, db, mentor.ID, models.BookingStatusConfirmed)
	updated, err = TransitionBooking(db, confirmed.ID, models.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)
}

func TestRateBookingUpdatesMentorAggregates(t *testing.T) {
	db := setupTestDB(t)
	mentor := seedMentor(t, db, 120, true)

	first := seedBooking(t, db, mentor.ID, models.BookingStatusCompleted)
	_, err := RateBooking(db, 7, first.ID, 4, "great session")
	require.NoError(t, err)

	second := seedBooking(t, db, mentor.ID, models.BookingStatusCompleted)
	rated, err := RateBooking(db, 7, second.ID, 5, "")
	require.NoError(t, err)
	require.NotNil(t, rated.Rating)
	assert.Equal(t, 5, *rated.Rating)

	var refreshed models.Mentor
	require.NoError(t, db.Where("id = ?", mentor.ID).First(&refreshed).Error)
	assert.Equal(t, 2, refreshed.RatingCount)
	assert.InDelta(t, 4.5, refreshed.Rating, 0.001)
}

func TestRateBookingRequiresCompletion(t *testing.T) {
	db := setupTestDB(t)
	mentor := seedMentor(t, db, 120, true)
	booking := seedBooking(t, db, mentor.ID, models.BookingStatusConfirmed)

	_, err := RateBooking(db, 7, booking.ID, 5, "")
	require.ErrorIs(t, err, ErrNotCompleted)
}

func TestRateBookingOnlyOnce(t *testing.T) {
	db := setupTestDB(t)
	mentor := seedMentor(t, db, 120, true)
	booking := seedBooking(t, db, mentor.ID, models.BookingStatusCompleted)

	_, err := RateBooking(db, 7, booking.ID, 5, "")
	require.NoError(t, err)

	_, err = RateBooking(db, 7, booking.ID, 3, "")
	require.ErrorIs(t, err, ErrAlreadyRated)
}

func TestRateBookingWrongUser(t *testing.T) {
	db := setupTestDB(t)
	mentor := seedMentor(t, db, 120, true)
	booking := seedBooking(t, db, mentor.ID, models.BookingStatusCompleted)

	_, err := RateBooking(db, 8, booking.ID, 5, "")
	require.ErrorIs(t, err, ErrBookingMissing)
}
