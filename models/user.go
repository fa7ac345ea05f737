package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                uint               `json:"id" gorm:"primaryKey"`
	Name              string             `json:"name"`
	Email             string             `json:"email" gorm:"unique"`
	Password          string             `json:"password,omitempty"`
	Role              Role               `json:"role" gorm:"size:20;default:'user'"`
	ProvidedServices  []Service          `json:"provided_services,omitempty" gorm:"foreignKey:ProviderID"`
	AvailabilitySlots []AvailabilitySlot `json:"availability_slots,omitempty" gorm:"foreignKey:ProviderID"`
	Bookings          []Booking          `json:"bookings,omitempty" gorm:"foreignKey:CustomerID"`
	ProviderBookings  []Booking          `json:"provider_bookings,omitempty" gorm:"foreignKey:ProviderID"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	DeletedAt         gorm.DeletedAt     `json:"deleted_at,omitempty" gorm:"index"`
}
