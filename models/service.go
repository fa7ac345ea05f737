package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Duration    Duration `json:"duration" gorm:"type:jsonb"`
	Price       float64  `json:"price"`
	Active      bool     `json:"active" gorm:"default:true"`
	CategoryID  uint     `json:"category_id"`
	Category    Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ProviderID  uint     `json:"provider_id"`
	Provider    User     `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
}
