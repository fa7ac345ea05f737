package main

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/MohamedOscar3/booking-service-modules-sub001/booking"
	"github.com/MohamedOscar3/booking-service-modules-sub001/config"
	"github.com/MohamedOscar3/booking-service-modules-sub001/controllers"
	"github.com/MohamedOscar3/booking-service-modules-sub001/cron"
	"github.com/MohamedOscar3/booking-service-modules-sub001/db"
	"github.com/MohamedOscar3/booking-service-modules-sub001/notify"
	"github.com/MohamedOscar3/booking-service-modules-sub001/redis"
	"github.com/MohamedOscar3/booking-service-modules-sub001/routes"
	"github.com/MohamedOscar3/booking-service-modules-sub001/utils"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	db.Init()
	redis.InitRedis()

	dispatcher := notify.NewEmailDispatcher(db.DB)
	manager := booking.NewManager(db.DB, dispatcher, utils.GetLogger())
	controllers.SetLifecycleManager(manager)

	cron.StartCronJobs(manager)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupCategoryRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupAvailabilityRoutes(app)
	routes.SetupBookingRoutes(app)

	if err := app.Listen(":" + config.AppConfig.AppPort); err != nil {
		utils.GetLogger().Fatal("Server stopped", zap.Error(err))
	}
}
