package middleware

import (
	"techstep/database"
	"techstep/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that loads the authenticated user and
// rejects the request unless the account is active and holds one of the
// given roles. The loaded user is stored in c.Locals("currentUser").
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var user models.User
		if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		if user.Status != models.UserStatusActive {
			return JsonResponse(c, fiber.StatusForbidden, false, "Account is not active!", nil)
		}

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if user.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
			}
		}

		c.Locals("currentUser", user)
		return c.Next()
	}
}
