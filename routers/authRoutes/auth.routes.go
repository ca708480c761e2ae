package authRoutes

import (
	authController "techstep/controllers/auth"
	authValidators "techstep/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctl *authController.Controller) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), ctl.Signup)
	authGroup.Post("/login", ctl.Login)
}
