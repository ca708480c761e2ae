package authValidator

import (
	"techstep/middleware"

	"github.com/gofiber/fiber/v2"
)

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email" validate:"required,email"`
			Username string `json:"username" validate:"required,min=3"`
			FullName string `json:"full_name" validate:"required"`
			Password string `json:"password" validate:"required,min=8"`
			Phone    string `json:"phone"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}
