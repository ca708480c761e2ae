package main

import (
	"log"

	"techstep/config"
	authController "techstep/controllers/auth"
	courseController "techstep/controllers/course"
	mentorController "techstep/controllers/mentor"
	paymentController "techstep/controllers/payment"
	"techstep/database"
	authRoutes "techstep/routers/authRoutes"
	courseRoutes "techstep/routers/courseRoutes"
	dashboardRoutes "techstep/routers/dashboardRoutes"
	mentorRoutes "techstep/routers/mentorRoutes"
	paymentRoutes "techstep/routers/paymentRoutes"
	userRoutes "techstep/routers/userRoutes"
	"techstep/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	stripeClient := utils.NewStripeClient(cfg)
	mailer := utils.NewMailer(cfg)

	authCtl := authController.NewController(cfg)
	paymentCtl := paymentController.NewController(cfg, stripeClient, mailer)
	courseController.Mail = mailer
	mentorController.Mail = mailer
	mentorController.DefaultDurationMinutes = cfg.BookingDurationMinutes

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authCtl)
	userRoutes.SetupUserRoutes(app, cfg)
	courseRoutes.SetupCourseRoutes(app, cfg)
	courseRoutes.SetupAdminCourseRoutes(app, cfg)
	mentorRoutes.SetupMentorRoutes(app, cfg)
	paymentRoutes.SetupPaymentRoutes(app, cfg, paymentCtl)
	dashboardRoutes.SetupDashboardRoutes(app, cfg)

	scheduler := utils.StartSubscriptionScheduler(db)
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
