package models_test

import (
	"testing"

	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from    models.BookingStatus
		to      models.BookingStatus
		allowed bool
	}{
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusConfirmed, models.StatusCancelled, true},
		{models.StatusConfirmed, models.StatusPending, false},
		{models.StatusCancelled, models.StatusConfirmed, false},
		{models.StatusCancelled, models.StatusPending, false},
		{models.StatusCancelled, models.StatusCancelled, false},
		{models.StatusPending, models.StatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, models.ValidStatus(models.StatusPending))
	assert.True(t, models.ValidStatus(models.StatusConfirmed))
	assert.True(t, models.ValidStatus(models.StatusCancelled))
	assert.False(t, models.ValidStatus("completed"))
	assert.False(t, models.ValidStatus(""))
}

func TestBookingDefaultsToPending(t *testing.T) {
	b := &models.Booking{}
	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, models.StatusPending, b.Status)

	b = &models.Booking{Status: models.StatusConfirmed}
	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, models.StatusConfirmed, b.Status)
}
