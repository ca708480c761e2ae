package paymentController

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"techstep/models"
	courseModels "techstep/models/course"
	"techstep/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PaymentProvider is the slice of the external payment API the workflow needs.
type PaymentProvider interface {
	CreateIntent(amount int64, currency string, metadata map[string]string) (*utils.PaymentIntent, error)
	RetrieveIntent(id string) (*utils.PaymentIntent, error)
}

// CredentialSender hands off a welcome payload for delivery. Delivery
// itself is not the workflow's contract.
type CredentialSender interface {
	SendWelcomeEmail(email, name, username, password, courseTitle string)
}

var (
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrAlreadyProcessed    = errors.New("payment already processed")
	ErrCourseNotFound      = errors.New("course not found")
	ErrProvider            = errors.New("payment provider unavailable")
)

// PurchaseRequest carries a caller-initiated payment confirmation.
// Amount is in the currency's smallest unit (cents).
type PurchaseRequest struct {
	PaymentIntentID string
	CourseID        uint
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Amount          int64
	Currency        string
}

// PurchaseResult summarizes the durable state a confirmation produced.
type PurchaseResult struct {
	UserID       uint
	EnrollmentID uint
	PaymentID    uint
	NewUser      bool
}

// ProcessPurchase turns a successful external charge into local state
// exactly once: verify the intent with the provider, then in a single
// transaction reuse-or-provision the user, record the payment, enroll
// the user and bump the course counter. The provider round trip happens
// before the transaction opens, so no local lock is held during it.
// A repeated confirmation of the same intent returns ErrAlreadyProcessed.
func ProcessPurchase(db *gorm.DB, provider PaymentProvider, sender CredentialSender, saltRound int, req PurchaseRequest) (*PurchaseResult, error) {
	intent, err := provider.RetrieveIntent(req.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	if intent.Status != "succeeded" {
		return nil, ErrPaymentNotCompleted
	}

	var course courseModels.Course
	if err := db.Where("id = ?", req.CourseID).First(&course).Error; err != nil {
		return nil, ErrCourseNotFound
	}

	currency := req.Currency
	if intent.Currency != "" {
		currency = intent.Currency
	}
	if currency == "" {
		currency = "usd"
	}

	// The provider-verified amount is authoritative; the caller's figure
	// only fills in if the provider omits one.
	amountCents := intent.Amount
	if amountCents == 0 {
		amountCents = req.Amount
	}

	result := &PurchaseResult{}
	var username, tempPassword string

	txErr := db.Transaction(func(tx *gorm.DB) error {
		// Duplicate confirmation check; the unique index on
		// payment_intent_id backstops concurrent racers.
		var existing models.Payment
		if err := tx.Where("payment_intent_id = ?", req.PaymentIntentID).First(&existing).Error; err == nil {
			return ErrAlreadyProcessed
		}

		var user models.User
		err := tx.Where("email = ?", req.CustomerEmail).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			username = utils.GenerateUsername(req.CustomerEmail)
			tempPassword = utils.GenerateRandomPassword()

			hashed, hashErr := bcrypt.GenerateFromPassword([]byte(tempPassword), saltRound)
			if hashErr != nil {
				return hashErr
			}

			// Payment is treated as proof of identity
			user = models.User{
				Email:      req.CustomerEmail,
				Username:   username,
				FullName:   req.CustomerName,
				Phone:      req.CustomerPhone,
				Password:   string(hashed),
				Role:       models.RoleStudent,
				Status:     models.UserStatusActive,
				IsVerified: true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			result.NewUser = true
		} else if err != nil {
			return err
		}

		now := time.Now()
		amount := float64(amountCents) / 100
		payment := models.Payment{
			UserID:          user.ID,
			PaymentIntentID: req.PaymentIntentID,
			PaymentMethod:   models.PaymentMethodStripe,
			PaymentType:     models.PaymentTypeCoursePurchase,
			Status:          models.PaymentStatusCompleted,
			Amount:          amount,
			Currency:        strings.ToUpper(currency),
			Description:     "Course purchase: " + course.Title,
			CourseID:        &course.ID,
			NetAmount:       amount,
			ProcessedAt:     &now,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		result.PaymentID = payment.ID

		var enrollment courseModels.Enrollment
		err = tx.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			enrollment = courseModels.Enrollment{
				UserID:   user.ID,
				CourseID: course.ID,
				Status:   courseModels.EnrollmentStatusActive,
			}
			if err := tx.Create(&enrollment).Error; err != nil {
				return err
			}
			if err := tx.Model(&courseModels.Course{}).Where("id = ?", course.ID).
				UpdateColumn("enrollment_count", gorm.Expr("enrollment_count + ?", 1)).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		result.UserID = user.ID
		result.EnrollmentID = enrollment.ID
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrAlreadyProcessed) {
			return nil, ErrAlreadyProcessed
		}
		// A unique-index violation on the intent id means a concurrent
		// confirmation won the race.
		var existing models.Payment
		if err := db.Where("payment_intent_id = ?", req.PaymentIntentID).First(&existing).Error; err == nil {
			return nil, ErrAlreadyProcessed
		}
		return nil, txErr
	}

	// The already-captured external charge is never reversed here; on
	// rollback above no local rows survive either.
	if result.NewUser && sender != nil {
		sender.SendWelcomeEmail(req.CustomerEmail, req.CustomerName, username, tempPassword, course.Title)
	}

	return result, nil
}
