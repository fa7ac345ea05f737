package routes

import (
	"github.com/MohamedOscar3/booking-service-modules-sub001/controllers"
	"github.com/MohamedOscar3/booking-service-modules-sub001/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes, throttled per client IP
	auth.Post("/register", middleware.AuthRateLimiter(), controllers.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)

	//Get user by ID
	auth.Get("/user/:id", middleware.Protected(), controllers.GetUserByID)
}
