package paymentRoutes

import (
	"techstep/config"
	paymentController "techstep/controllers/payment"
	"techstep/middleware"
	"techstep/models"
	paymentValidators "techstep/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App, cfg *config.Config, ctl *paymentController.Controller) {
	paymentGroup := app.Group("/payment")

	// Checkout happens before an account exists, so these two stay open
	paymentGroup.Post("/create-intent", paymentValidators.CreateIntent(), ctl.CreatePaymentIntent)
	paymentGroup.Post("/confirm", paymentValidators.ConfirmPayment(), ctl.ConfirmPayment)

	paymentGroup.Get("/list", middleware.JWTMiddleware(cfg.JWTKey), middleware.RequireRole(models.RoleAdmin), ctl.GetPayments)
}
