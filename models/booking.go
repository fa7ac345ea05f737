package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// transitions is the lifecycle table: pending may be confirmed or cancelled,
// confirmed may only be cancelled, cancelled is terminal. Expiry of stale
// pending rows is a hard delete performed by the sweep, not a status.
var transitions = map[BookingStatus]map[BookingStatus]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusCancelled: true,
	},
	StatusConfirmed: {
		StatusCancelled: true,
	},
	StatusCancelled: {},
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return transitions[s][next]
}

// ValidStatus reports whether status is one of the lifecycle states.
func ValidStatus(status BookingStatus) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking reserves a service with a provider over [StartTime, EndTime).
// Price and ServiceDescription are snapshots taken from the service at
// creation time so later catalog edits do not rewrite history.
type Booking struct {
	gorm.Model
	Reference          string        `json:"reference" gorm:"size:36;uniqueIndex"`
	CustomerID         uint          `json:"customer_id"`
	Customer           User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProviderID         uint          `json:"provider_id"`
	Provider           User          `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ServiceID          uint          `json:"service_id"`
	Service            Service       `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	StartTime          time.Time     `json:"start_time"`
	EndTime            time.Time     `json:"end_time"`
	Status             BookingStatus `json:"status" gorm:"size:20"`
	Price              float64       `json:"price"`
	ServiceDescription string        `json:"service_description"`
	Notes              string        `json:"notes"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}
