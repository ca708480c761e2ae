package courseRoutes

import (
	"techstep/config"
	controllers "techstep/controllers/course"
	"techstep/middleware"
	"techstep/models"
	validators "techstep/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and the authenticated
// enrollment and progress routes.
func SetupCourseRoutes(app *fiber.App, cfg *config.Config) {
	courseGroup := app.Group("/course")

	// Catalog is public so visitors can browse before buying
	courseGroup.Get("/list", controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware(cfg.JWTKey), validators.CourseID(), controllers.EnrollInCourse)

	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware(cfg.JWTKey), controllers.GetEnrollments)

	enrollmentGroup := app.Group("/enrollment")
	enrollmentGroup.Get("/:id/progress", middleware.JWTMiddleware(cfg.JWTKey), validators.EnrollmentID(), controllers.GetProgress)
	enrollmentGroup.Post("/:id/progress", middleware.JWTMiddleware(cfg.JWTKey), validators.EnrollmentID(), validators.Progress(), controllers.UpdateProgress)
}

// SetupAdminCourseRoutes sets up the admin catalog management routes
func SetupAdminCourseRoutes(app *fiber.App, cfg *config.Config) {
	adminGroup := app.Group("/admin/course")
	adminGroup.Use(middleware.JWTMiddleware(cfg.JWTKey), middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/list", controllers.AdminGetAllCourses)
	adminGroup.Get("/:id", validators.CourseID(), controllers.AdminGetCourseDetails)
	adminGroup.Post("/", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", validators.CourseID(), validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.CourseID(), controllers.AdminDeleteCourse)
}
