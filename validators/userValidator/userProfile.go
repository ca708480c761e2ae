package userValidator

import (
	"techstep/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName    string `json:"full_name"`
			AvatarURL   string `json:"avatar_url"`
			Bio         string `json:"bio"`
			Phone       string `json:"phone"`
			LinkedinURL string `json:"linkedin_url"`
			GithubURL   string `json:"github_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
