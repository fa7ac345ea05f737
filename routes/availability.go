package routes

import (
	"github.com/MohamedOscar3/booking-service-modules-sub001/controllers"
	"github.com/MohamedOscar3/booking-service-modules-sub001/middleware"
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/gofiber/fiber/v2"
)

// SetupAvailabilityRoutes configures all availability management routes
func SetupAvailabilityRoutes(app *fiber.App) {
	availability := app.Group("/availability-management", middleware.Protected())

	availability.Get("/", controllers.GetAllAvailabilitySlots)
	availability.Get("/provider/:id", controllers.GetProviderAvailability)
	availability.Get("/provider/:id/recurring", controllers.GetProviderRecurringAvailability)
	availability.Get("/available/:date", controllers.GetAvailabilityForDate)

	manage := middleware.RequireCapability(models.CapManageAvailability)
	availability.Post("/", manage, controllers.CreateAvailabilitySlot)
	availability.Put("/:id", manage, controllers.UpdateAvailabilitySlot)
	availability.Delete("/:id", manage, controllers.DeleteAvailabilitySlot)
}
