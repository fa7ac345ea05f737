package models

import (
	"gorm.io/gorm"
)

// Category groups services into an admin-managed catalog.
type Category struct {
	gorm.Model
	Name        string    `json:"name" gorm:"unique"`
	Description string    `json:"description"`
	Services    []Service `json:"services,omitempty" gorm:"foreignKey:CategoryID"`
}
