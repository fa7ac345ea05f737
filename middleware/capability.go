package middleware

import (
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/MohamedOscar3/booking-service-modules-sub001/utils"
	"github.com/gofiber/fiber/v2"
)

// RequireCapability gates a route on the role capability table. Must run
// after Protected(), which sets the role local from the token.
func RequireCapability(capability models.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(models.Role)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User role not found in context",
			})
		}

		if !models.HasCapability(role, capability) {
			err := utils.NewAuthorizationError("you don't have permission to perform this action")
			return c.Status(utils.HTTPStatus(err)).JSON(utils.NewErrorResponse(err))
		}

		return c.Next()
	}
}
