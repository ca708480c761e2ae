package mentorValidator

import (
	"strconv"
	"strings"

	mentorController "techstep/controllers/mentor"
	"techstep/middleware"
	"techstep/models"

	"github.com/gofiber/fiber/v2"
)

// MentorID validates the :id route param
func MentorID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		mentorIDStr := strings.TrimSpace(c.Params("id"))
		if mentorIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Mentor ID is required!", nil)
		}

		mentorID, err := strconv.Atoi(mentorIDStr)
		if err != nil || mentorID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Mentor ID!", nil)
		}

		c.Locals("mentorID", mentorID)
		return c.Next()
	}
}

// BookSession validates the booking creation payload
func BookSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(mentorController.BookingInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.SessionTitle = strings.TrimSpace(reqData.SessionTitle)

		errors := middleware.ValidateStruct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}
		if reqData.DurationMinutes < 0 {
			errors["duration_minutes"] = "Duration cannot be negative!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBooking", reqData)
		return c.Next()
	}
}

// UpdateBookingStatus validates the :id route param and target status
func UpdateBookingStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookingIDStr := strings.TrimSpace(c.Params("id"))
		if bookingIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Booking ID is required!", nil)
		}

		bookingID, err := strconv.Atoi(bookingIDStr)
		if err != nil || bookingID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Booking ID!", nil)
		}

		reqData := new(struct {
			Status string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		switch reqData.Status {
		case models.BookingStatusConfirmed, models.BookingStatusCompleted, models.BookingStatusCancelled:
		default:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid booking status!", nil)
		}

		c.Locals("bookingID", bookingID)
		c.Locals("bookingStatus", reqData.Status)
		return c.Next()
	}
}

// RateSession validates the :id route param and rating payload
func RateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookingIDStr := strings.TrimSpace(c.Params("id"))
		if bookingIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Booking ID is required!", nil)
		}

		bookingID, err := strconv.Atoi(bookingIDStr)
		if err != nil || bookingID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Booking ID!", nil)
		}

		reqData := new(struct {
			Rating   int    `json:"rating" validate:"required,min=1,max=5"`
			Feedback string `json:"feedback"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("bookingID", bookingID)
		c.Locals("validatedRating", reqData)
		return c.Next()
	}
}
