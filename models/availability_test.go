package models_test

import (
	"testing"
	"time"

	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/MohamedOscar3/booking-service-modules-sub001/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilitySlotValidate(t *testing.T) {
	start := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	t.Run("valid recurring", func(t *testing.T) {
		slot := models.AvailabilitySlot{
			Type:       models.SlotRecurring,
			WeekDay:    models.Tuesday,
			StartClock: "09:00",
			EndClock:   "17:00",
		}
		require.NoError(t, slot.Validate())
	})

	t.Run("valid once", func(t *testing.T) {
		slot := models.AvailabilitySlot{
			Type:     models.SlotOnce,
			StartsAt: &start,
			EndsAt:   &end,
		}
		require.NoError(t, slot.Validate())
	})

	t.Run("invalid cases", func(t *testing.T) {
		cases := []struct {
			name string
			slot models.AvailabilitySlot
		}{
			{"unknown type", models.AvailabilitySlot{Type: "weekly"}},
			{"bad weekday", models.AvailabilitySlot{
				Type: models.SlotRecurring, WeekDay: 7,
				StartClock: "09:00", EndClock: "17:00",
			}},
			{"bad clock", models.AvailabilitySlot{
				Type: models.SlotRecurring, WeekDay: models.Monday,
				StartClock: "9am", EndClock: "17:00",
			}},
			{"empty window", models.AvailabilitySlot{
				Type: models.SlotRecurring, WeekDay: models.Monday,
				StartClock: "09:00", EndClock: "09:00",
			}},
			{"once missing bounds", models.AvailabilitySlot{Type: models.SlotOnce}},
			{"once inverted", models.AvailabilitySlot{
				Type: models.SlotOnce, StartsAt: &end, EndsAt: &start,
			}},
		}

		for _, tc := range cases {
			err := tc.slot.Validate()
			require.Error(t, err, tc.name)
			assert.Equal(t, utils.CodeValidation, utils.ErrorCodeOf(err), tc.name)
		}
	})
}
