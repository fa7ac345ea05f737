package db

import (
	"fmt"
	"log"

	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Service{},
		&models.AvailabilitySlot{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// Partial unique index backing the double-booking guard: two live
	// pending/confirmed bookings can never share a provider and start time,
	// even when two requests race past the availability check.
	err = DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_provider_start_live
		ON bookings (provider_id, start_time)
		WHERE status IN ('pending', 'confirmed') AND deleted_at IS NULL
	`).Error
	if err != nil {
		log.Fatal("Failed to create booking conflict index: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
