package routes

import (
	"github.com/MohamedOscar3/booking-service-modules-sub001/controllers"
	"github.com/MohamedOscar3/booking-service-modules-sub001/middleware"
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/gofiber/fiber/v2"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	bookings := app.Group("/bookings", middleware.Protected())

	bookings.Get("/", controllers.GetBookings)
	bookings.Get("/:id", controllers.GetBooking)
	bookings.Post("/", middleware.RequireCapability(models.CapCreateBooking), controllers.CreateBooking)
	bookings.Patch("/:id/status", controllers.UpdateBookingStatus)
}
