package userRoutes

import (
	"techstep/config"
	"techstep/controllers/userControllers"
	"techstep/middleware"
	"techstep/models"
	userValidators "techstep/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, cfg *config.Config) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware(cfg.JWTKey), userControllers.GetProfile)
	userGroup.Patch("/profile", middleware.JWTMiddleware(cfg.JWTKey), userValidators.UpdateProfile(), userControllers.UpdateProfile)

	adminGroup := app.Group("/admin/user")
	adminGroup.Use(middleware.JWTMiddleware(cfg.JWTKey), middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/list", userControllers.AdminListUsers)
	adminGroup.Patch("/status", userControllers.AdminUpdateUserStatus)
	adminGroup.Delete("/", userControllers.AdminDeleteUser)
}
