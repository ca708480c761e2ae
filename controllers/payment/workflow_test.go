package paymentController

import (
	"errors"
	"fmt"
	"testing"

	"techstep/database"
	"techstep/models"
	courseModels "techstep/models/course"
	"techstep/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedCourse(t *testing.T, db *gorm.DB) courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Title:          "Fullstack Web Development",
		Slug:           "fullstack-web-development",
		Description:    "From zero to deployed applications.",
		Level:          courseModels.LevelBeginner,
		Status:         courseModels.StatusPublished,
		Price:          2999,
		DurationHours:  120,
		InstructorName: "Dana Whitfield",
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

type fakeProvider struct {
	intents map[string]*utils.PaymentIntent
}

func (f *fakeProvider) CreateIntent(amount int64, currency string, metadata map[string]string) (*utils.PaymentIntent, error) {
	intent := &utils.PaymentIntent{
		ID:       fmt.Sprintf("pi_fake_%d", len(f.intents)+1),
		Status:   "requires_payment_method",
		Amount:   amount,
		Currency: currency,
	}
	f.intents[intent.ID] = intent
	return intent, nil
}

func (f *fakeProvider) RetrieveIntent(id string) (*utils.PaymentIntent, error) {
	intent, ok := f.intents[id]
	if !ok {
		return nil, errors.New("no such payment intent")
	}
	return intent, nil
}

type fakeSender struct {
	emails    []string
	usernames []string
	passwords []string
}

func (f *fakeSender) SendWelcomeEmail(email, name, username, password, courseTitle string) {
	f.emails = append(f.emails, email)
	f.usernames = append(f.usernames, username)
	f.passwords = append(f.passwords, password)
}

func succeededIntent(id string, amount int64) *fakeProvider {
	return &fakeProvider{intents: map[string]*utils.PaymentIntent{
		id: {ID: id, Status: "succeeded", Amount: amount, Currency: "usd"},
	}}
}

func TestProcessPurchaseProvisionsAccountAndEnrollment(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db)
	provider := succeededIntent("pi_123", 299900)
	sender := &fakeSender{}

	result, err := ProcessPurchase(db, provider, sender, 10, PurchaseRequest{
		PaymentIntentID: "pi_123",
		CourseID:        course.ID,
		CustomerName:    "Riley Moore",
		CustomerEmail:   "riley.moore@example.com",
		CustomerPhone:   "5550001111",
		Amount:          299900,
	})
	require.NoError(t, err)
	assert.True(t, result.NewUser)

	var user models.User
	require.NoError(t, db.Where("email = ?", "riley.moore@example.com").First(&user).Error)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.True(t, user.IsVerified)
	assert.Contains(t, user.Username, "riley.moore_")

	var payment models.Payment
	require.NoError(t, db.Where("payment_intent_id = ?", "pi_123").First(&payment).Error)
	assert.Equal(t, 2999.00, payment.Amount)
	assert.Equal(t, "USD", payment.Currency)
	assert.Equal(t, models.PaymentStatusCompleted, payment.Status)
	assert.NotNil(t, payment.ProcessedAt)

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, courseModels.EnrollmentStatusActive, enrollment.Status)

	var refreshed courseModels.Course
	require.NoError(t, db.Where("id = ?", course.ID).First(&refreshed).Error)
	assert.Equal(t, 1, refreshed.EnrollmentCount)

	require.Len(t, sender.emails, 1)
	assert.Equal(t, "riley.moore@example.com", sender.emails[0])
	assert.Len(t, sender.passwords[0], 12)
}

func TestProcessPurchaseRejectsUnsettledIntent(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db)
	provider := &fakeProvider{intents: map[string]*utils.PaymentIntent{
		"pi_pending": {ID: "pi_pending", Status: "requires_payment_method"},
	}}

	_, err := ProcessPurchase(db, provider, nil, 10, PurchaseRequest{
		PaymentIntentID: "pi_pending",
		CourseID:        course.ID,
		CustomerName:    "Riley Moore",
		CustomerEmail:   "riley.moore@example.com",
		Amount:          299900,
	})
	require.ErrorIs(t, err, ErrPaymentNotCompleted)

	// Nothing was written
	var users, payments, enrollments int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Payment{}).Count(&payments)
	db.Model(&courseModels.Enrollment{}).Count(&enrollments)
	assert.Zero(t, users)
	assert.Zero(t, payments)
	assert.Zero(t, enrollments)
}

func TestProcessPurchaseReusesExistingAccount(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db)

	existing := models.User{
		Email:    "casey@example.com",
		Username: "casey",
		FullName: "Casey Lin",
		Password: "hashed",
		Role:     models.RoleStudent,
		Status:   models.UserStatusActive,
	}
	require.NoError(t, db.Create(&existing).Error)

	provider := succeededIntent("pi_456", 299900)
	sender := &fakeSender{}

	result, err := ProcessPurchase(db, provider, sender, 10, PurchaseRequest{
		PaymentIntentID: "pi_456",
		CourseID:        course.ID,
		CustomerName:    "Casey Lin",
		CustomerEmail:   "casey@example.com",
		Amount:          299900,
	})
	require.NoError(t, err)
	assert.False(t, result.NewUser)
	assert.Equal(t, existing.ID, result.UserID)

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.EqualValues(t, 1, users)

	// No credentials go out for an account that already existed
	assert.Empty(t, sender.emails)
}

func TestProcessPurchaseDuplicateConfirmation(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db)
	provider := succeededIntent("pi_789", 299900)

	req := PurchaseRequest{
		PaymentIntentID: "pi_789",
		CourseID:        course.ID,
		CustomerName:    "Riley Moore",
		CustomerEmail:   "riley.moore@example.com",
		Amount:          299900,
	}

	_, err := ProcessPurchase(db, provider, nil, 10, req)
	require.NoError(t, err)

	_, err = ProcessPurchase(db, provider, nil, 10, req)
	require.ErrorIs(t, err, ErrAlreadyProcessed)

	var payments int64
	db.Model(&models.Payment{}).Count(&payments)
	assert.EqualValues(t, 1, payments)

	var refreshed courseModels.Course
	require.NoError(t, db.Where("id = ?", course.ID).First(&refreshed).Error)
	assert.Equal(t, 1, refreshed.EnrollmentCount)
}

func TestProcessPurchaseUsesProviderAmount(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db)
	provider := succeededIntent("pi_amount", 299900)

	// The caller understates the amount; the verified intent wins
	_, err := ProcessPurchase(db, provider, nil, 10, PurchaseRequest{
		PaymentIntentID: "pi_amount",
		CourseID:        course.ID,
		CustomerName:    "Riley Moore",
		CustomerEmail:   "riley.moore@example.com",
		Amount:          100,
	})
	require.NoError(t, err)

	var payment models.Payment
	require.NoError(t, db.Where("payment_intent_id = ?", "pi_amount").First(&payment).Error)
	assert.Equal(t, 2999.00, payment.Amount)
	assert.Equal(t, 2999.00, payment.NetAmount)
}

func TestProcessPurchaseProviderError(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db)
	provider := &fakeProvider{intents: map[string]*utils.PaymentIntent{}}

	_, err := ProcessPurchase(db, provider, nil, 10, PurchaseRequest{
		PaymentIntentID: "pi_unknown",
		CourseID:        course.ID,
		CustomerName:    "Riley Moore",
		CustomerEmail:   "riley.moore@example.com",
		Amount:          299900,
	})
	require.ErrorIs(t, err, ErrProvider)

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Zero(t, users)
}

func TestProcessPurchaseUnknownCourse(t *testing.T) {
	db := setupTestDB(t)
	provider := succeededIntent("pi_999", 299900)

	_, err := ProcessPurchase(db, provider, nil, 10, PurchaseRequest{
		PaymentIntentID: "pi_999",
		CourseID:        42,
		CustomerName:    "Riley Moore",
		CustomerEmail:   "riley.moore@example.com",
		Amount:          299900,
	})
	require.ErrorIs(t, err, ErrCourseNotFound)
}
