package notify

import (
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
)

// Dispatcher receives booking lifecycle events. The lifecycle manager calls
// it synchronously after the persistence commit and before the response is
// returned, so implementations must not block for long and must not fail the
// request.
type Dispatcher interface {
	OnCreated(booking *models.Booking)
	OnStatusChanged(booking *models.Booking, previous models.BookingStatus)
	OnCancelled(booking *models.Booking)
}
