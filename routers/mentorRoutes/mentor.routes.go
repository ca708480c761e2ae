package mentorRoutes

import (
	"techstep/config"
	mentorController "techstep/controllers/mentor"
	"techstep/middleware"
	mentorValidators "techstep/validators/mentor"

	"github.com/gofiber/fiber/v2"
)

func SetupMentorRoutes(app *fiber.App, cfg *config.Config) {
	mentorGroup := app.Group("/mentor")

	// Mentor directory is public
	mentorGroup.Get("/list", mentorController.GetMentors)

	mentorGroup.Post("/book", middleware.JWTMiddleware(cfg.JWTKey), mentorValidators.BookSession(), mentorController.BookSession)
	mentorGroup.Get("/bookings", middleware.JWTMiddleware(cfg.JWTKey), mentorController.GetMyBookings)
	mentorGroup.Patch("/booking/:id/status", middleware.JWTMiddleware(cfg.JWTKey), mentorValidators.UpdateBookingStatus(), mentorController.UpdateBookingStatus)
	mentorGroup.Post("/booking/:id/rate", middleware.JWTMiddleware(cfg.JWTKey), mentorValidators.RateSession(), mentorController.RateSession)

	// Keep the wildcard last so /list and /bookings resolve first
	mentorGroup.Get("/:id", mentorValidators.MentorID(), mentorController.GetMentorDetails)
}
