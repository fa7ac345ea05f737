package availability

import (
	"time"

	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/MohamedOscar3/booking-service-modules-sub001/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const secondsPerDay = 24 * 60 * 60

// Resolver computes whether a candidate interval is bookable for a provider.
// Callers that need the check to serialize against concurrent creations must
// run it on a transaction handle: the slot rows are read FOR UPDATE, so two
// transactions probing the same provider take turns.
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// IsAvailable reports whether [start, end) lies inside at least one active
// availability window for the provider and overlaps no pending or confirmed
// booking. Zero-length or inverted intervals are rejected.
func (r *Resolver) IsAvailable(providerID uint, start, end time.Time) (bool, error) {
	if !end.After(start) {
		return false, utils.NewValidationError("candidate interval must have start before end")
	}

	// Locking the provider's slot rows serializes concurrent bookings for
	// the same provider even when their start times differ, which the
	// partial unique index on (provider_id, start_time) alone cannot do.
	var slots []models.AvailabilitySlot
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("provider_id = ? AND active = ?", providerID, true).Find(&slots).Error; err != nil {
		return false, err
	}

	covered := false
	for _, slot := range slots {
		if SlotCovers(slot, start, end) {
			covered = true
			break
		}
	}
	if !covered {
		return false, nil
	}

	return r.noConflict(providerID, start, end)
}

// noConflict checks for an overlapping pending/confirmed booking. The row
// lock keeps a concurrent creation in another transaction from passing the
// same check until this transaction finishes.
func (r *Resolver) noConflict(providerID uint, start, end time.Time) (bool, error) {
	var existing models.Booking
	err := r.db.Raw(`
		SELECT *
		FROM bookings
		WHERE provider_id = ?
			AND deleted_at IS NULL
			AND status IN ('pending', 'confirmed')
			AND start_time < ? AND end_time > ?
		FOR UPDATE
		LIMIT 1
	`, providerID, end, start).Scan(&existing).Error
	if err != nil {
		return false, err
	}
	return existing.ID == 0, nil
}

// SlotCovers reports whether the slot's window fully contains [start, end).
// Malformed slots cover nothing.
func SlotCovers(slot models.AvailabilitySlot, start, end time.Time) bool {
	switch slot.Type {
	case models.SlotOnce:
		if slot.StartsAt == nil || slot.EndsAt == nil {
			return false
		}
		return !start.Before(*slot.StartsAt) && !end.After(*slot.EndsAt)
	case models.SlotRecurring:
		return recurringCovers(slot, start, end)
	}
	return false
}

// recurringCovers compares the candidate's time-of-day interval against the
// slot's clock window, at second granularity.
//
// A window with StartClock > EndClock wraps midnight: it covers
// [StartClock, 24:00) on slot.WeekDay and [00:00, EndClock) on the following
// day. A candidate that itself crosses midnight never matches; bookings are
// same-day units.
func recurringCovers(slot models.AvailabilitySlot, start, end time.Time) bool {
	from, err := time.Parse(models.ClockLayout, slot.StartClock)
	if err != nil {
		return false
	}
	to, err := time.Parse(models.ClockLayout, slot.EndClock)
	if err != nil {
		return false
	}

	fromSec := (from.Hour()*60 + from.Minute()) * 60
	toSec := (to.Hour()*60 + to.Minute()) * 60
	startSec := (start.Hour()*60+start.Minute())*60 + start.Second()
	endSec := startSec + int(end.Sub(start).Seconds())

	if endSec > secondsPerDay {
		return false
	}

	weekday := DayOfWeek(start)
	if fromSec < toSec {
		return weekday == slot.WeekDay && startSec >= fromSec && endSec <= toSec
	}
	if fromSec == toSec {
		return false
	}
	// Wrapping window.
	if weekday == slot.WeekDay && startSec >= fromSec {
		return true
	}
	return weekday == nextDay(slot.WeekDay) && endSec <= toSec
}

// DayOfWeek maps a timestamp onto the slot weekday scale (0 = Sunday).
func DayOfWeek(t time.Time) models.DayOfWeek {
	return models.DayOfWeek(t.Weekday())
}

func nextDay(d models.DayOfWeek) models.DayOfWeek {
	return (d + 1) % 7
}

// SlotsForDate filters slots down to those that can produce availability on
// the given calendar day: recurring slots whose weekday matches (or whose
// wrapping window spills into it) and once slots overlapping the day.
func SlotsForDate(slots []models.AvailabilitySlot, date time.Time) []models.AvailabilitySlot {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	weekday := DayOfWeek(dayStart)

	var matched []models.AvailabilitySlot
	for _, slot := range slots {
		if !slot.Active {
			continue
		}
		switch slot.Type {
		case models.SlotRecurring:
			if slot.WeekDay == weekday {
				matched = append(matched, slot)
				continue
			}
			if wrapsMidnight(slot) && nextDay(slot.WeekDay) == weekday {
				matched = append(matched, slot)
			}
		case models.SlotOnce:
			if slot.StartsAt == nil || slot.EndsAt == nil {
				continue
			}
			if slot.StartsAt.Before(dayEnd) && slot.EndsAt.After(dayStart) {
				matched = append(matched, slot)
			}
		}
	}
	return matched
}

func wrapsMidnight(slot models.AvailabilitySlot) bool {
	from, err := time.Parse(models.ClockLayout, slot.StartClock)
	if err != nil {
		return false
	}
	to, err := time.Parse(models.ClockLayout, slot.EndClock)
	if err != nil {
		return false
	}
	return from.Hour()*60+from.Minute() > to.Hour()*60+to.Minute()
}
