package paymentValidator

import (
	"strings"

	"techstep/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateIntent validates the payment intent creation payload
func CreateIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount        int64  `json:"amount" validate:"required,gt=0"`
			Currency      string `json:"currency"`
			CourseID      uint   `json:"course_id" validate:"required"`
			CustomerName  string `json:"customer_name" validate:"required"`
			CustomerEmail string `json:"customer_email" validate:"required,email"`
			CustomerPhone string `json:"customer_phone"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.CustomerName = strings.TrimSpace(reqData.CustomerName)
		reqData.CustomerEmail = strings.TrimSpace(strings.ToLower(reqData.CustomerEmail))

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPaymentIntent", reqData)
		return c.Next()
	}
}

// ConfirmPayment validates the payment confirmation payload
func ConfirmPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PaymentIntentID string `json:"payment_intent_id" validate:"required"`
			CourseID        uint   `json:"course_id" validate:"required"`
			CustomerName    string `json:"customer_name" validate:"required"`
			CustomerEmail   string `json:"customer_email" validate:"required,email"`
			CustomerPhone   string `json:"customer_phone"`
			Amount          int64  `json:"amount" validate:"required,gt=0"`
			Currency        string `json:"currency"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.PaymentIntentID = strings.TrimSpace(reqData.PaymentIntentID)
		reqData.CustomerName = strings.TrimSpace(reqData.CustomerName)
		reqData.CustomerEmail = strings.TrimSpace(strings.ToLower(reqData.CustomerEmail))

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPaymentConfirm", reqData)
		return c.Next()
	}
}
