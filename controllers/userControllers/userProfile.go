package userControllers

import (
	"techstep/database"
	"techstep/middleware"
	"techstep/models"
	courseModels "techstep/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns a user's profile. Owner or admin only.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetID := uint(c.QueryInt("userId", int(userID)))
	if targetID != userID {
		role, _ := c.Locals("userRole").(string)
		if role != models.RoleAdmin {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view your own profile!", nil)
		}
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", targetID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// UpdateProfile updates the authenticated user's own profile fields
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*struct {
		FullName    string `json:"full_name"`
		AvatarURL   string `json:"avatar_url"`
		Bio         string `json:"bio"`
		Phone       string `json:"phone"`
		LinkedinURL string `json:"linkedin_url"`
		GithubURL   string `json:"github_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.FullName != "" {
		user.FullName = reqData.FullName
	}
	if reqData.AvatarURL != "" {
		user.AvatarURL = reqData.AvatarURL
	}
	if reqData.Bio != "" {
		user.Bio = reqData.Bio
	}
	if reqData.Phone != "" {
		user.Phone = reqData.Phone
	}
	if reqData.LinkedinURL != "" {
		user.LinkedinURL = reqData.LinkedinURL
	}
	if reqData.GithubURL != "" {
		user.GithubURL = reqData.GithubURL
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// AdminListUsers lists all users (admin only)
func AdminListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		db = db.Where("role = ?", role)
	}
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminUpdateUserStatus changes a user's account status (admin only)
func AdminUpdateUserStatus(c *fiber.Ctx) error {
	targetID := c.QueryInt("userId", 0)
	if targetID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "userId is required!", nil)
	}

	reqData := new(struct {
		Status string `json:"status"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}
	switch reqData.Status {
	case models.UserStatusActive, models.UserStatusInactive, models.UserStatusSuspended:
	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid status value!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", targetID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Status = reqData.Status
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User status updated successfully!", user)
}

// AdminDeleteUser removes a user unless payments or enrollments still
// reference the account.
func AdminDeleteUser(c *fiber.Ctx) error {
	targetID := c.QueryInt("userId", 0)
	if targetID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "userId is required!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", targetID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var payments int64
	database.Database.Db.Model(&models.Payment{}).Where("user_id = ?", targetID).Count(&payments)
	var enrollments int64
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("user_id = ?", targetID).Count(&enrollments)
	if payments > 0 || enrollments > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User owns payments or enrollments and cannot be deleted!", nil)
	}

	if err := database.Database.Db.Delete(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}
