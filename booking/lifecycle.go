package booking

import (
	"errors"
	"time"

	"github.com/MohamedOscar3/booking-service-modules-sub001/availability"
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/MohamedOscar3/booking-service-modules-sub001/notify"
	"github.com/MohamedOscar3/booking-service-modules-sub001/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultExpiry is how long a pending booking may sit unconfirmed before the
// sweep removes it.
const DefaultExpiry = time.Hour

// CreateInput is a customer's booking request. Provider, end time and price
// are derived from the service.
type CreateInput struct {
	CustomerID uint
	ServiceID  uint
	StartTime  time.Time
	Notes      string
}

// Manager drives the booking lifecycle: creation in pending state,
// confirmation/cancellation transitions, and expiry of stale pending rows.
type Manager struct {
	db         *gorm.DB
	dispatcher notify.Dispatcher
	log        *zap.Logger
}

func NewManager(db *gorm.DB, dispatcher notify.Dispatcher, log *zap.Logger) *Manager {
	return &Manager{db: db, dispatcher: dispatcher, log: log}
}

// Create validates availability and persists a new pending booking. The
// availability check and the insert share one transaction; together with the
// FOR UPDATE conflict probe and the partial unique index on
// (provider_id, start_time) this closes the double-booking race.
func (m *Manager) Create(in CreateInput) (*models.Booking, error) {
	var service models.Service
	if err := m.db.First(&service, in.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("service not found")
		}
		return nil, err
	}
	if !service.Active {
		return nil, utils.NewNotFoundError("service is not active")
	}

	booking := &models.Booking{
		Reference:          uuid.NewString(),
		CustomerID:         in.CustomerID,
		ProviderID:         service.ProviderID,
		ServiceID:          service.ID,
		StartTime:          in.StartTime,
		EndTime:            in.StartTime.Add(service.Duration.ToDuration()),
		Status:             models.StatusPending,
		Price:              service.Price,
		ServiceDescription: service.Name,
		Notes:              in.Notes,
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		ok, err := availability.NewResolver(tx).IsAvailable(booking.ProviderID, booking.StartTime, booking.EndTime)
		if err != nil {
			return err
		}
		if !ok {
			return utils.NewUnavailableSlotError("requested time is not available")
		}
		if err := tx.Create(booking).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.NewConflictError("slot was booked concurrently")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.log.Info("booking created",
		zap.Uint("booking_id", booking.ID),
		zap.Uint("provider_id", booking.ProviderID),
		zap.Time("start_time", booking.StartTime))

	// Dispatch after commit, before the response returns.
	m.dispatcher.OnCreated(booking)
	return booking, nil
}

// ChangeStatus moves a booking through the lifecycle table on behalf of
// actor. Providers manage their own bookings, customers may only cancel
// their own, admins may do both.
func (m *Manager) ChangeStatus(bookingID uint, next models.BookingStatus, actorID uint, actorRole models.Role) (*models.Booking, error) {
	if !models.ValidStatus(next) {
		return nil, utils.NewValidationError("unknown booking status")
	}

	var booking models.Booking
	var previous models.BookingStatus

	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("booking not found")
			}
			return err
		}

		if err := authorizeTransition(&booking, next, actorID, actorRole); err != nil {
			return err
		}

		previous = booking.Status
		if !previous.CanTransitionTo(next) {
			return utils.NewInvalidTransitionError(
				"cannot transition booking from " + string(previous) + " to " + string(next))
		}

		// Conditional write: if another transaction moved the booking
		// between our read and this update, zero rows match and we bail
		// instead of overwriting the newer status.
		res := tx.Model(&booking).Where("status = ?", previous).Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.NewConflictError("booking was changed concurrently")
		}
		booking.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.log.Info("booking status changed",
		zap.Uint("booking_id", booking.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(next)))

	if next == models.StatusCancelled {
		m.dispatcher.OnCancelled(&booking)
	} else {
		m.dispatcher.OnStatusChanged(&booking, previous)
	}
	return &booking, nil
}

func authorizeTransition(booking *models.Booking, next models.BookingStatus, actorID uint, actorRole models.Role) error {
	switch {
	case actorRole == models.RoleAdmin:
		return nil
	case actorID == booking.ProviderID && models.HasCapability(actorRole, models.CapConfirmBooking):
		return nil
	case actorID == booking.CustomerID && next == models.StatusCancelled:
		return nil
	}
	return utils.NewAuthorizationError("not allowed to change this booking")
}

// ExpireStale hard-deletes pending bookings whose start time is older than
// now minus timeout. The conditional DELETE makes it idempotent and safe to
// run concurrently with confirmations: a row confirmed in between no longer
// matches status = pending.
func (m *Manager) ExpireStale(now time.Time, timeout time.Duration) (int64, error) {
	cutoff := now.Add(-timeout)
	res := m.db.Exec(
		`DELETE FROM bookings WHERE status = ? AND start_time < ?`,
		models.StatusPending, cutoff,
	)
	if res.Error != nil {
		return 0, res.Error
	}
	m.log.Info("expiry sweep finished",
		zap.Int64("deleted", res.RowsAffected),
		zap.Time("cutoff", cutoff))
	return res.RowsAffected, nil
}
