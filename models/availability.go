package models

import (
	"time"

	"github.com/MohamedOscar3/booking-service-modules-sub001/utils"
	"gorm.io/gorm"
)

// SlotType distinguishes weekly recurring windows from one-off windows.
type SlotType string

const (
	SlotRecurring SlotType = "recurring"
	SlotOnce      SlotType = "once"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// ClockLayout is the wire format for time-of-day values on recurring slots.
const ClockLayout = "15:04"

// AvailabilitySlot is a provider-defined window during which bookings may be
// made. Recurring slots carry a weekday plus "HH:MM" clock bounds; once slots
// carry absolute timestamps. Rows are soft-deleted so past bookings keep
// their audit trail.
type AvailabilitySlot struct {
	gorm.Model
	ProviderID uint       `json:"provider_id"`
	Provider   User       `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Type       SlotType   `json:"type" gorm:"size:20"`
	WeekDay    DayOfWeek  `json:"week_day"`
	StartClock string     `json:"start_clock"` // Format "HH:MM" in 24h, recurring only
	EndClock   string     `json:"end_clock"`   // Format "HH:MM" in 24h, recurring only
	StartsAt   *time.Time `json:"starts_at"`   // once only
	EndsAt     *time.Time `json:"ends_at"`     // once only
	Active     bool       `json:"active" gorm:"default:true"`
}

// Validate checks the per-type field invariants.
func (s *AvailabilitySlot) Validate() error {
	switch s.Type {
	case SlotRecurring:
		if s.WeekDay < Sunday || s.WeekDay > Saturday {
			return utils.NewValidationError("week_day must be between 0 (Sunday) and 6 (Saturday)")
		}
		if _, err := time.Parse(ClockLayout, s.StartClock); err != nil {
			return utils.NewValidationError("start_clock must be in HH:MM format")
		}
		if _, err := time.Parse(ClockLayout, s.EndClock); err != nil {
			return utils.NewValidationError("end_clock must be in HH:MM format")
		}
		if s.StartClock == s.EndClock {
			return utils.NewValidationError("recurring slot must not be empty")
		}
	case SlotOnce:
		if s.StartsAt == nil || s.EndsAt == nil {
			return utils.NewValidationError("once slot requires starts_at and ends_at")
		}
		if !s.StartsAt.Before(*s.EndsAt) {
			return utils.NewValidationError("starts_at must be before ends_at")
		}
	default:
		return utils.NewValidationError("type must be recurring or once")
	}
	return nil
}
