package routes

import (
	"github.com/MohamedOscar3/booking-service-modules-sub001/controllers"
	"github.com/MohamedOscar3/booking-service-modules-sub001/middleware"
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/gofiber/fiber/v2"
)

func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services", middleware.Protected())
	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", controllers.GetService)

	manage := middleware.RequireCapability(models.CapManageServices)
	service.Post("/", manage, controllers.CreateService)
	service.Put("/:id", manage, controllers.UpdateService)
	service.Delete("/:id", manage, controllers.DeleteService)
}
