package notify

import (
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"go.uber.org/zap"
)

// LogDispatcher records lifecycle events to the log. Used in development and
// as the fallback when SMTP is not configured.
type LogDispatcher struct {
	Log *zap.Logger
}

func (d *LogDispatcher) OnCreated(booking *models.Booking) {
	d.Log.Info("booking created",
		zap.Uint("booking_id", booking.ID),
		zap.String("reference", booking.Reference),
		zap.Uint("provider_id", booking.ProviderID))
}

func (d *LogDispatcher) OnStatusChanged(booking *models.Booking, previous models.BookingStatus) {
	d.Log.Info("booking status changed",
		zap.Uint("booking_id", booking.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(booking.Status)))
}

func (d *LogDispatcher) OnCancelled(booking *models.Booking) {
	d.Log.Info("booking cancelled", zap.Uint("booking_id", booking.ID))
}
