package authController

import (
	"log"
	"time"

	"techstep/config"
	"techstep/database"
	"techstep/middleware"
	"techstep/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Controller holds auth configuration bound at construction.
type Controller struct {
	JWTKey    string
	SaltRound int
}

func NewController(cfg *config.Config) *Controller {
	return &Controller{JWTKey: cfg.JWTKey, SaltRound: cfg.SaltRound}
}

// Signup registers a new student account
func (ctl *Controller) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Email    string `json:"email" validate:"required,email"`
		Username string `json:"username" validate:"required,min=3"`
		FullName string `json:"full_name" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
		Phone    string `json:"phone"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Check if username already exists
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), ctl.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Email:    reqData.Email,
		Username: reqData.Username,
		FullName: reqData.FullName,
		Phone:    reqData.Phone,
		Password: string(hashedPassword),
		Role:     models.RoleStudent,
		Status:   models.UserStatusActive,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

// Login authenticates a user and issues a JWT
func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}
	if reqData.Email == "" || reqData.Password == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email and password are required!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if user.Status != models.UserStatusActive {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account is not active!", nil)
	}

	token, err := middleware.GenerateJWT(ctl.JWTKey, user.ID, user.FullName, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	now := time.Now()
	user.LastLogin = &now
	database.Database.Db.Save(&user)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
