package cron

import (
	"fmt"
	"time"

	"github.com/MohamedOscar3/booking-service-modules-sub001/booking"
	"github.com/MohamedOscar3/booking-service-modules-sub001/db"
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/MohamedOscar3/booking-service-modules-sub001/notify"
	"github.com/MohamedOscar3/booking-service-modules-sub001/utils"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartCronJobs initializes and starts the cron scheduler for the expiry
// sweep and booking reminders
func StartCronJobs(manager *booking.Manager) {
	log := utils.GetLogger()
	c := cron.New()

	// Expiry sweep: remove pending bookings left unconfirmed for over an
	// hour. Idempotent, so the schedule density is not load-bearing.
	_, err := c.AddFunc("*/5 * * * *", func() {
		if _, err := manager.ExpireStale(time.Now(), booking.DefaultExpiry); err != nil {
			log.Error("expiry sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		log.Fatal("Failed to add expiry sweep cron job", zap.Error(err))
	}

	// Run every minute to check for bookings in the next hour
	_, err = c.AddFunc("* * * * *", sendBookingReminders)
	if err != nil {
		log.Fatal("Failed to add reminder cron job", zap.Error(err))
	}

	c.Start()
	log.Info("Cron job scheduler started")
}

// sendBookingReminders checks for confirmed bookings and sends reminders
func sendBookingReminders() {
	log := utils.GetLogger()

	var bookings []models.Booking
	now := time.Now()
	// Look for bookings starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Customer").Preload("Provider").
		Where("status = ? AND start_time BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Find(&bookings).Error
	if err != nil {
		log.Error("Error fetching bookings for reminders", zap.Error(err))
		return
	}

	for _, b := range bookings {
		if err := sendReminderEmail(&b); err != nil {
			log.Warn("Failed to send reminder",
				zap.Uint("booking_id", b.ID), zap.Error(err))
			continue
		}
		log.Info("Sent booking reminder",
			zap.Uint("booking_id", b.ID), zap.String("to", b.Customer.Email))
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(b *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Booking - %s", b.ServiceDescription)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming booking scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Booking Team</p>
	`, b.Customer.Name, b.ServiceDescription, b.Provider.Name,
		b.StartTime.Format("2006-01-02 15:04:05"),
		b.EndTime.Format("2006-01-02 15:04:05"),
		b.Status)

	return notify.SendEmail(b.Customer.Email, subject, body)
}
