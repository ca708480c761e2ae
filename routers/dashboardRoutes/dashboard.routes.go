package dashboardRoutes

import (
	"techstep/config"
	dashboardController "techstep/controllers/dashboard"
	"techstep/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, cfg *config.Config) {
	app.Get("/dashboard", middleware.JWTMiddleware(cfg.JWTKey), dashboardController.GetDashboard)
}
