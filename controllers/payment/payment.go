package paymentController

import (
	"errors"
	"strconv"

	"techstep/config"
	"techstep/database"
	"techstep/middleware"
	"techstep/models"
	courseModels "techstep/models/course"

	"github.com/gofiber/fiber/v2"
)

// Controller carries the payment workflow's collaborators, bound at
// construction. The two endpoints are intentionally unauthenticated:
// purchases happen before an account exists.
type Controller struct {
	Provider        PaymentProvider
	Sender          CredentialSender
	SaltRound       int
	DefaultCurrency string
}

func NewController(cfg *config.Config, provider PaymentProvider, sender CredentialSender) *Controller {
	return &Controller{
		Provider:        provider,
		Sender:          sender,
		SaltRound:       cfg.SaltRound,
		DefaultCurrency: cfg.DefaultCurrency,
	}
}

// CreatePaymentIntent opens a payment intent at the provider for a course purchase
func (ctl *Controller) CreatePaymentIntent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPaymentIntent").(*struct {
		Amount        int64  `json:"amount" validate:"required,gt=0"`
		Currency      string `json:"currency"`
		CourseID      uint   `json:"course_id" validate:"required"`
		CustomerName  string `json:"customer_name" validate:"required"`
		CustomerEmail string `json:"customer_email" validate:"required,email"`
		CustomerPhone string `json:"customer_phone"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	currency := reqData.Currency
	if currency == "" {
		currency = ctl.DefaultCurrency
	}

	intent, err := ctl.Provider.CreateIntent(reqData.Amount, currency, map[string]string{
		"course_id":      strconv.FormatUint(uint64(course.ID), 10),
		"course_title":   course.Title,
		"customer_name":  reqData.CustomerName,
		"customer_email": reqData.CustomerEmail,
		"customer_phone": reqData.CustomerPhone,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment provider rejected the request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment intent created!", fiber.Map{
		"payment_intent_id": intent.ID,
		"client_secret":     intent.ClientSecret,
	})
}

// ConfirmPayment verifies a caller-initiated confirmation and commits the purchase
func (ctl *Controller) ConfirmPayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPaymentConfirm").(*struct {
		PaymentIntentID string `json:"payment_intent_id" validate:"required"`
		CourseID        uint   `json:"course_id" validate:"required"`
		CustomerName    string `json:"customer_name" validate:"required"`
		CustomerEmail   string `json:"customer_email" validate:"required,email"`
		CustomerPhone   string `json:"customer_phone"`
		Amount          int64  `json:"amount" validate:"required,gt=0"`
		Currency        string `json:"currency"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := ProcessPurchase(database.Database.Db, ctl.Provider, ctl.Sender, ctl.SaltRound, PurchaseRequest{
		PaymentIntentID: reqData.PaymentIntentID,
		CourseID:        reqData.CourseID,
		CustomerName:    reqData.CustomerName,
		CustomerEmail:   reqData.CustomerEmail,
		CustomerPhone:   reqData.CustomerPhone,
		Amount:          reqData.Amount,
		Currency:        reqData.Currency,
	})
	if err != nil {
		switch {
		case err == ErrPaymentNotCompleted:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment not completed!", nil)
		case err == ErrAlreadyProcessed:
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payment already processed!", nil)
		case err == ErrCourseNotFound:
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		case errors.Is(err, ErrProvider):
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment provider unavailable!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment confirmation failed!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment confirmed and account created!", fiber.Map{
		"user_id":       result.UserID,
		"enrollment_id": result.EnrollmentID,
		"new_user":      result.NewUser,
	})
}

// GetPayments lists all payments (admin only)
func (ctl *Controller) GetPayments(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Payment{})

	var total int64
	db.Count(&total)

	var payments []models.Payment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
