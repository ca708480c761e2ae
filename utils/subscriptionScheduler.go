package utils

import (
	"log"
	"time"

	"techstep/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartSubscriptionScheduler runs a daily job that expires active
// subscriptions whose billing period has ended.
func StartSubscriptionScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	// Every day at 00:15
	_, err := c.AddFunc("15 0 * * *", func() {
		if err := ExpireLapsedSubscriptions(db); err != nil {
			log.Printf("Subscription expiry job failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("Failed to schedule subscription expiry job: %v", err)
		return c
	}

	c.Start()
	log.Println("Subscription scheduler started.")
	return c
}

// ExpireLapsedSubscriptions marks active subscriptions past their period
// end as expired and returns the first error encountered.
func ExpireLapsedSubscriptions(db *gorm.DB) error {
	result := db.Model(&models.Subscription{}).
		Where("status = ? AND current_period_end < ?", models.SubscriptionStatusActive, time.Now()).
		Update("status", models.SubscriptionStatusExpired)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Expired %d lapsed subscriptions.", result.RowsAffected)
	}
	return nil
}
