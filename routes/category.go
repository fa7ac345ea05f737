package routes

import (
	"github.com/MohamedOscar3/booking-service-modules-sub001/controllers"
	"github.com/MohamedOscar3/booking-service-modules-sub001/middleware"
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/gofiber/fiber/v2"
)

// SetupCategoryRoutes configures all category related routes
func SetupCategoryRoutes(app *fiber.App) {
	category := app.Group("/categories", middleware.Protected())
	category.Get("/", controllers.GetAllCategories)
	category.Get("/:id", controllers.GetCategory)

	// Category mutation is admin-only.
	manage := middleware.RequireCapability(models.CapManageCategories)
	category.Post("/", manage, controllers.CreateCategory)
	category.Put("/:id", manage, controllers.UpdateCategory)
	category.Delete("/:id", manage, controllers.DeleteCategory)
}
