package utils

import (
	"log"
	"time"

	"akilam/database"
	"akilam/models"

	"github.com/robfig/cron/v3"
)

// InitializeRegistrationScheduler sets up the pending-payment reminder scheduler
func InitializeRegistrationScheduler() {
	log.Println("[REGISTRATION-SCHEDULER] Initializing registration scheduler...")

	c := cron.New()

	// Run daily at 9 AM to remind applicants with unpaid registrations
	c.AddFunc("0 9 * * *", func() {
		log.Println("[REGISTRATION-SCHEDULER] Running daily pending-payment check...")
		ProcessPendingReminders()
	})

	c.Start()
	log.Println("[REGISTRATION-SCHEDULER] Registration scheduler started - runs daily at 9 AM")
}

// ProcessPendingReminders sends one reminder email per registration that has
// been awaiting payment for more than 24 hours
func ProcessPendingReminders() {
	db := database.Database.Db
	cutoff := time.Now().Add(-24 * time.Hour)

	var pending []models.Registration
	if err := db.
		Where("payment_status = ? AND reminder_sent = false AND is_deleted = false", models.PaymentStatusPending).
		Where("created_at < ?", cutoff).
		Find(&pending).Error; err != nil {
		log.Printf("[REGISTRATION-SCHEDULER] Error fetching pending registrations: %v", err)
		return
	}

	log.Printf("[REGISTRATION-SCHEDULER] Found %d registrations awaiting payment", len(pending))

	notifier := EmailNotifier{}
	for _, reg := range pending {
		notifier.SendPaymentReminderEmail(reg.Email, reg.FirstName, reg.Course, reg.Amount)

		// Mark reminder as sent
		if err := db.Model(&models.Registration{}).Where("id = ?", reg.ID).
			Update("reminder_sent", true).Error; err != nil {
			log.Printf("[REGISTRATION-SCHEDULER] Error marking reminder for registration %d: %v", reg.ID, err)
		}
	}
}
