package mentorController

import (
	"errors"
	"time"

	"techstep/database"
	"techstep/middleware"
	"techstep/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Mail delivers booking notifications when set from main.
var Mail interface {
	SendBookingEmail(email, name, sessionTitle, scheduledAt string)
}

// DefaultDurationMinutes is applied to bookings that omit a duration.
// Overridden from configuration at startup.
var DefaultDurationMinutes = 60

var (
	ErrMentorMissing  = errors.New("mentor not found")
	ErrBookingMissing = errors.New("booking not found")
	ErrBadTransition  = errors.New("invalid booking status transition")
	ErrNotCompleted   = errors.New("booking not completed")
	ErrAlreadyRated   = errors.New("booking already rated")
)

// MentorResponse is a mentor profile with its JSON list columns parsed
// back to lists.
type MentorResponse struct {
	models.Mentor
	Specialties    []string `json:"specialties"`
	Certifications []string `json:"certifications"`
	Languages      []string `json:"languages"`
}

func toMentorResponse(m models.Mentor) MentorResponse {
	return MentorResponse{
		Mentor:         m,
		Specialties:    models.ParseList(m.Specialties),
		Certifications: models.ParseList(m.Certifications),
		Languages:      models.ParseList(m.Languages),
	}
}

// BookingInput is the create-booking payload.
type BookingInput struct {
	MentorID           uint      `json:"mentor_id" validate:"required"`
	SessionTitle       string    `json:"session_title" validate:"required"`
	SessionDescription string    `json:"session_description"`
	ScheduledDate      time.Time `json:"scheduled_date" validate:"required"`
	DurationMinutes    int       `json:"duration_minutes"`
}

// CreateBooking books a session with an active mentor. The total amount
// is the mentor's hourly rate prorated by duration. No check is made
// against the mentor's existing schedule.
func CreateBooking(db *gorm.DB, userID uint, input BookingInput, defaultDuration int) (*models.MentorBooking, error) {
	var mentor models.Mentor
	if err := db.Where("id = ? AND is_active = ?", input.MentorID, true).First(&mentor).Error; err != nil {
		return nil, ErrMentorMissing
	}

	duration := input.DurationMinutes
	if duration <= 0 {
		duration = defaultDuration
	}

	booking := models.MentorBooking{
		UserID:             userID,
		MentorID:           mentor.ID,
		SessionTitle:       input.SessionTitle,
		SessionDescription: input.SessionDescription,
		ScheduledDate:      input.ScheduledDate,
		DurationMinutes:    duration,
		Status:             models.BookingStatusPending,
		TotalAmount:        mentor.HourlyRate * float64(duration) / 60,
	}
	if err := db.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// TransitionBooking applies a booking status change. Allowed moves:
// pending -> confirmed -> completed, and cancellation from pending or
// confirmed. Completing a session bumps the mentor's session counter.
func TransitionBooking(db *gorm.DB, bookingID uint, newStatus string) (*models.MentorBooking, error) {
	var booking models.MentorBooking
	if err := db.Where("id = ?", bookingID).First(&booking).Error; err != nil {
		return nil, ErrBookingMissing
	}

	allowed := false
	switch newStatus {
	case models.BookingStatusConfirmed:
		allowed = booking.Status == models.BookingStatusPending
	case models.BookingStatusCompleted:
		allowed = booking.Status == models.BookingStatusConfirmed
	case models.BookingStatusCancelled:
		allowed = booking.Status == models.BookingStatusPending || booking.Status == models.BookingStatusConfirmed
	}
	if !allowed {
		return nil, ErrBadTransition
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		booking.Status = newStatus
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		if newStatus == models.BookingStatusCompleted {
			return tx.Model(&models.Mentor{}).Where("id = ?", booking.MentorID).
				UpdateColumn("total_sessions", gorm.Expr("total_sessions + ?", 1)).Error
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &booking, nil
}

// RateBooking records a 1-5 rating on a completed session and folds it
// into the mentor's aggregate rating.
func RateBooking(db *gorm.DB, userID, bookingID uint, rating int, feedback string) (*models.MentorBooking, error) {
	var booking models.MentorBooking
	if err := db.Where("id = ? AND user_id = ?", bookingID, userID).First(&booking).Error; err != nil {
		return nil, ErrBookingMissing
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, ErrNotCompleted
	}
	if booking.Rating != nil {
		return nil, ErrAlreadyRated
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		booking.Rating = &rating
		booking.StudentFeedback = feedback
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		var mentor models.Mentor
		if err := tx.Where("id = ?", booking.MentorID).First(&mentor).Error; err != nil {
			return err
		}
		mentor.Rating = (mentor.Rating*float64(mentor.RatingCount) + float64(rating)) / float64(mentor.RatingCount+1)
		mentor.RatingCount++
		return tx.Save(&mentor).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return &booking, nil
}

// GetMentors lists active mentors
func GetMentors(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Mentor{}).Where("is_active = ?", true)
	if featured := c.Query("featured"); featured == "true" || featured == "1" {
		db = db.Where("is_featured = ?", true)
	}

	var total int64
	db.Count(&total)

	var mentors []models.Mentor
	if err := db.Offset(offset).Limit(limit).Order("rating desc, total_sessions desc").Find(&mentors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mentors!", nil)
	}

	result := make([]MentorResponse, len(mentors))
	for i, mentor := range mentors {
		result[i] = toMentorResponse(mentor)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentors fetched successfully!", fiber.Map{
		"mentors": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetMentorDetails fetches a single active mentor profile
func GetMentorDetails(c *fiber.Ctx) error {
	mentorID := c.Locals("mentorID").(int)

	var mentor models.Mentor
	if err := database.Database.Db.Where("id = ? AND is_active = ?", mentorID, true).First(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentor details fetched successfully!", toMentorResponse(mentor))
}

// BookSession creates a pending booking for the authenticated user
func BookSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedBooking").(*BookingInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	booking, err := CreateBooking(database.Database.Db, userID, *reqData, DefaultDurationMinutes)
	if err != nil {
		if errors.Is(err, ErrMentorMissing) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create booking!", nil)
	}

	if Mail != nil {
		var user models.User
		if database.Database.Db.Where("id = ?", userID).First(&user).Error == nil {
			Mail.SendBookingEmail(user.Email, user.FullName, booking.SessionTitle, booking.ScheduledDate.Format(time.RFC1123))
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Booking created successfully!", booking)
}

// UpdateBookingStatus applies a status transition to a booking
func UpdateBookingStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	bookingID := c.Locals("bookingID").(int)
	newStatus := c.Locals("bookingStatus").(string)

	var booking models.MentorBooking
	if err := database.Database.Db.Where("id = ?", bookingID).First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	// Owners may cancel; the mentor's account or an admin may do the rest
	role, _ := c.Locals("userRole").(string)
	if role != models.RoleAdmin {
		if newStatus == models.BookingStatusCancelled && booking.UserID == userID {
			// fine
		} else {
			var mentor models.Mentor
			if err := database.Database.Db.Where("id = ? AND user_id = ?", booking.MentorID, userID).First(&mentor).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot modify this booking!", nil)
			}
		}
	}

	updated, err := TransitionBooking(database.Database.Db, uint(bookingID), newStatus)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingMissing):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
		case errors.Is(err, ErrBadTransition):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Booking cannot move to that status!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update booking!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking updated successfully!", updated)
}

// RateSession records the student's rating for a completed session
func RateSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	bookingID := c.Locals("bookingID").(int)

	reqData, ok := c.Locals("validatedRating").(*struct {
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
		Feedback string `json:"feedback"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	booking, err := RateBooking(database.Database.Db, userID, uint(bookingID), reqData.Rating, reqData.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingMissing):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
		case errors.Is(err, ErrNotCompleted):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only completed sessions can be rated!", nil)
		case errors.Is(err, ErrAlreadyRated):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Session already rated!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to rate session!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session rated successfully!", booking)
}

// GetMyBookings lists the authenticated user's bookings
func GetMyBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var bookings []models.MentorBooking
	if err := database.Database.Db.Where("user_id = ?", userID).Order("scheduled_date desc").Find(&bookings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bookings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bookings fetched successfully!", bookings)
}
