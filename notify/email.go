package notify

import (
	"fmt"

	"github.com/MohamedOscar3/booking-service-modules-sub001/config"
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/MohamedOscar3/booking-service-modules-sub001/utils"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// SendEmail delivers an HTML mail through the configured SMTP relay.
func SendEmail(to, subject, body string) error {
	cfg := config.AppConfig

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.EmailUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	return d.DialAndSend(m)
}

// EmailDispatcher mails the customer and provider on lifecycle events.
// Delivery failures are logged, never propagated: the booking is already
// committed by the time events fire.
type EmailDispatcher struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewEmailDispatcher(db *gorm.DB) *EmailDispatcher {
	return &EmailDispatcher{db: db, log: utils.GetLogger()}
}

func (d *EmailDispatcher) OnCreated(booking *models.Booking) {
	customer, provider, ok := d.participants(booking)
	if !ok {
		return
	}

	body := bookingDetails(booking, fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking has been created and is awaiting confirmation.</p>
	`, customer.Name))
	d.deliver(customer.Email, "Booking Created", body, booking)

	body = bookingDetails(booking, fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have a new booking awaiting your confirmation.</p>
	`, provider.Name))
	d.deliver(provider.Email, "New Booking Received", body, booking)
}

func (d *EmailDispatcher) OnStatusChanged(booking *models.Booking, previous models.BookingStatus) {
	customer, _, ok := d.participants(booking)
	if !ok {
		return
	}

	body := bookingDetails(booking, fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking status changed from <strong>%s</strong> to <strong>%s</strong>.</p>
	`, customer.Name, previous, booking.Status))
	d.deliver(customer.Email, "Booking Status Updated", body, booking)
}

func (d *EmailDispatcher) OnCancelled(booking *models.Booking) {
	customer, provider, ok := d.participants(booking)
	if !ok {
		return
	}

	body := bookingDetails(booking, fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking has been cancelled.</p>
	`, customer.Name))
	d.deliver(customer.Email, "Booking Cancelled", body, booking)

	body = bookingDetails(booking, fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>A booking with you has been cancelled.</p>
	`, provider.Name))
	d.deliver(provider.Email, "Booking Cancelled", body, booking)
}

func (d *EmailDispatcher) participants(booking *models.Booking) (customer, provider models.User, ok bool) {
	if err := d.db.First(&customer, booking.CustomerID).Error; err != nil {
		d.log.Warn("notify: customer lookup failed",
			zap.Uint("booking_id", booking.ID), zap.Error(err))
		return customer, provider, false
	}
	if err := d.db.First(&provider, booking.ProviderID).Error; err != nil {
		d.log.Warn("notify: provider lookup failed",
			zap.Uint("booking_id", booking.ID), zap.Error(err))
		return customer, provider, false
	}
	return customer, provider, true
}

func (d *EmailDispatcher) deliver(to, subject, body string, booking *models.Booking) {
	if err := SendEmail(to, subject, body); err != nil {
		d.log.Warn("notify: email delivery failed",
			zap.Uint("booking_id", booking.ID), zap.String("to", to), zap.Error(err))
	}
}

func bookingDetails(booking *models.Booking, intro string) string {
	return fmt.Sprintf(`
		%s
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Reference:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>Your Booking Team</p>
	`, intro, booking.Reference, booking.ServiceDescription,
		booking.StartTime.Format("2006-01-02 15:04:05"),
		booking.EndTime.Format("2006-01-02 15:04:05"),
		booking.Status)
}
