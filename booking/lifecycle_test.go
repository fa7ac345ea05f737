package booking_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MohamedOscar3/booking-service-modules-sub001/booking"
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/MohamedOscar3/booking-service-modules-sub001/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	providerID = uint(7)
	customerID = uint(3)
)

// recordingDispatcher captures lifecycle events in order.
type recordingDispatcher struct {
	events   []string
	previous []models.BookingStatus
}

func (d *recordingDispatcher) OnCreated(b *models.Booking) {
	d.events = append(d.events, "created")
}

func (d *recordingDispatcher) OnStatusChanged(b *models.Booking, prev models.BookingStatus) {
	d.events = append(d.events, "status_changed")
	d.previous = append(d.previous, prev)
}

func (d *recordingDispatcher) OnCancelled(b *models.Booking) {
	d.events = append(d.events, "cancelled")
}

func newTestManager(t *testing.T) (*booking.Manager, sqlmock.Sqlmock, *recordingDispatcher) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	dispatcher := &recordingDispatcher{}
	return booking.NewManager(gdb, dispatcher, zap.NewNop()), mock, dispatcher
}

// tuesday returns 2026-09-01 (a Tuesday) at the given clock time, UTC.
func tuesday(hour, min int) time.Time {
	return time.Date(2026, time.September, 1, hour, min, 0, 0, time.UTC)
}

func serviceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "duration", "price", "active", "provider_id", "category_id",
	}).AddRow(1, "Haircut", "A 30 minute haircut", `{"hours":0,"minutes":30}`, 25.0, true, providerID, 1)
}

func tuesdaySlotRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "provider_id", "type", "week_day", "start_clock", "end_clock", "active",
	}).AddRow(1, providerID, "recurring", int(models.Tuesday), "09:00", "17:00", true)
}

func bookingRows(id uint, status models.BookingStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "reference", "customer_id", "provider_id", "service_id",
		"start_time", "end_time", "status", "price",
	}).AddRow(id, "ref-1", customerID, providerID, 1,
		tuesday(10, 0), tuesday(10, 30), string(status), 25.0)
}

func TestCreateBooking(t *testing.T) {
	input := booking.CreateInput{
		CustomerID: customerID,
		ServiceID:  1,
		StartTime:  tuesday(10, 0),
		Notes:      "first visit",
	}

	t.Run("success inside recurring window", func(t *testing.T) {
		m, mock, dispatcher := newTestManager(t)

		mock.ExpectQuery(`SELECT (.+) FROM "services"`).WillReturnRows(serviceRows())
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "availability_slots"`).WillReturnRows(tuesdaySlotRows())
		mock.ExpectQuery(`SELECT (.+) FROM bookings`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`INSERT INTO "bookings"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectCommit()

		created, err := m.Create(input)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, created.Status)
		assert.Equal(t, providerID, created.ProviderID)
		assert.Equal(t, tuesday(10, 30), created.EndTime)
		assert.Equal(t, 25.0, created.Price)
		assert.NotEmpty(t, created.Reference)
		assert.Equal(t, []string{"created"}, dispatcher.events)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("outside availability window", func(t *testing.T) {
		m, mock, dispatcher := newTestManager(t)

		mock.ExpectQuery(`SELECT (.+) FROM "services"`).WillReturnRows(serviceRows())
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "availability_slots"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := m.Create(input)
		require.Error(t, err)
		assert.Equal(t, utils.CodeUnavailableSlot, utils.ErrorCodeOf(err))
		assert.Empty(t, dispatcher.events)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("overlapping booking", func(t *testing.T) {
		m, mock, dispatcher := newTestManager(t)

		overlapping := booking.CreateInput{
			CustomerID: customerID,
			ServiceID:  1,
			StartTime:  tuesday(10, 15),
		}

		mock.ExpectQuery(`SELECT (.+) FROM "services"`).WillReturnRows(serviceRows())
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "availability_slots"`).WillReturnRows(tuesdaySlotRows())
		mock.ExpectQuery(`SELECT (.+) FROM bookings`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectRollback()

		_, err := m.Create(overlapping)
		require.Error(t, err)
		assert.Equal(t, utils.CodeUnavailableSlot, utils.ErrorCodeOf(err))
		assert.Empty(t, dispatcher.events)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("service missing", func(t *testing.T) {
		m, mock, _ := newTestManager(t)

		mock.ExpectQuery(`SELECT (.+) FROM "services"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := m.Create(input)
		require.Error(t, err)
		assert.Equal(t, utils.CodeNotFound, utils.ErrorCodeOf(err))

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestChangeStatus(t *testing.T) {
	t.Run("provider confirms pending booking", func(t *testing.T) {
		m, mock, dispatcher := newTestManager(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
			WillReturnRows(bookingRows(5, models.StatusPending))
		mock.ExpectExec(`UPDATE "bookings" SET (.+) WHERE status = `).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		updated, err := m.ChangeStatus(5, models.StatusConfirmed, providerID, models.RoleProvider)
		require.NoError(t, err)
		assert.Equal(t, models.StatusConfirmed, updated.Status)
		assert.Equal(t, []string{"status_changed"}, dispatcher.events)
		assert.Equal(t, []models.BookingStatus{models.StatusPending}, dispatcher.previous)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("customer cancels own booking", func(t *testing.T) {
		m, mock, dispatcher := newTestManager(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
			WillReturnRows(bookingRows(5, models.StatusPending))
		mock.ExpectExec(`UPDATE "bookings" SET (.+) WHERE status = `).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		updated, err := m.ChangeStatus(5, models.StatusCancelled, customerID, models.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, updated.Status)
		assert.Equal(t, []string{"cancelled"}, dispatcher.events)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent change wins the row", func(t *testing.T) {
		m, mock, dispatcher := newTestManager(t)

		// The read sees pending, but by the time we write, another
		// transaction has already moved the booking: zero rows match the
		// conditional update, so nothing is overwritten.
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
			WillReturnRows(bookingRows(5, models.StatusPending))
		mock.ExpectExec(`UPDATE "bookings" SET (.+) WHERE status = `).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := m.ChangeStatus(5, models.StatusConfirmed, providerID, models.RoleProvider)
		require.Error(t, err)
		assert.Equal(t, utils.CodeConflict, utils.ErrorCodeOf(err))
		assert.Empty(t, dispatcher.events)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancelled booking cannot be confirmed", func(t *testing.T) {
		m, mock, dispatcher := newTestManager(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
			WillReturnRows(bookingRows(5, models.StatusCancelled))
		mock.ExpectRollback()

		_, err := m.ChangeStatus(5, models.StatusConfirmed, providerID, models.RoleProvider)
		require.Error(t, err)
		assert.Equal(t, utils.CodeInvalidTransition, utils.ErrorCodeOf(err))
		assert.Empty(t, dispatcher.events)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("customer cannot confirm", func(t *testing.T) {
		m, mock, _ := newTestManager(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
			WillReturnRows(bookingRows(5, models.StatusPending))
		mock.ExpectRollback()

		_, err := m.ChangeStatus(5, models.StatusConfirmed, customerID, models.RoleUser)
		require.Error(t, err)
		assert.Equal(t, utils.CodeAuthorization, utils.ErrorCodeOf(err))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unrelated user cannot cancel", func(t *testing.T) {
		m, mock, _ := newTestManager(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
			WillReturnRows(bookingRows(5, models.StatusPending))
		mock.ExpectRollback()

		_, err := m.ChangeStatus(5, models.StatusCancelled, uint(99), models.RoleUser)
		require.Error(t, err)
		assert.Equal(t, utils.CodeAuthorization, utils.ErrorCodeOf(err))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown status rejected before touching the store", func(t *testing.T) {
		m, mock, _ := newTestManager(t)

		_, err := m.ChangeStatus(5, "completed", providerID, models.RoleProvider)
		require.Error(t, err)
		assert.Equal(t, utils.CodeValidation, utils.ErrorCodeOf(err))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing booking", func(t *testing.T) {
		m, mock, _ := newTestManager(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := m.ChangeStatus(404, models.StatusConfirmed, providerID, models.RoleProvider)
		require.Error(t, err)
		assert.Equal(t, utils.CodeNotFound, utils.ErrorCodeOf(err))

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestExpireStale(t *testing.T) {
	now := tuesday(12, 0)

	t.Run("deletes stale pending rows", func(t *testing.T) {
		m, mock, _ := newTestManager(t)

		mock.ExpectExec(`DELETE FROM bookings WHERE status = (.+) AND start_time <`).
			WithArgs(string(models.StatusPending), now.Add(-time.Hour)).
			WillReturnResult(sqlmock.NewResult(0, 2))

		count, err := m.ExpireStale(now, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second run deletes nothing", func(t *testing.T) {
		m, mock, _ := newTestManager(t)

		mock.ExpectExec(`DELETE FROM bookings WHERE status = (.+) AND start_time <`).
			WithArgs(string(models.StatusPending), now.Add(-time.Hour)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM bookings WHERE status = (.+) AND start_time <`).
			WithArgs(string(models.StatusPending), now.Add(-time.Hour)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		first, err := m.ExpireStale(now, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, int64(2), first)

		second, err := m.ExpireStale(now, time.Hour)
		require.NoError(t, err)
		assert.Zero(t, second)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
