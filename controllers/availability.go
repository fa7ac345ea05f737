package controllers

import (
	"time"

	"github.com/MohamedOscar3/booking-service-modules-sub001/availability"
	"github.com/MohamedOscar3/booking-service-modules-sub001/db"
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/MohamedOscar3/booking-service-modules-sub001/utils"
	"github.com/gofiber/fiber/v2"
)

// GetAllAvailabilitySlots returns every active availability slot
func GetAllAvailabilitySlots(c *fiber.Ctx) error {
	var slots []models.AvailabilitySlot
	if err := db.DB.Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to fetch availability slots",
			Error:   err.Error(),
		})
	}
	return c.JSON(slots)
}

// CreateAvailabilitySlot creates a slot owned by the calling provider
func CreateAvailabilitySlot(c *fiber.Ctx) error {
	var slot models.AvailabilitySlot
	if err := c.BodyParser(&slot); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeValidation),
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(models.Role)

	// Providers may only create slots for themselves.
	if role != models.RoleAdmin || slot.ProviderID == 0 {
		slot.ProviderID = userID
	}
	slot.Active = true

	if err := slot.Validate(); err != nil {
		return c.Status(utils.HTTPStatus(err)).JSON(utils.NewErrorResponse(err))
	}

	if err := db.DB.Create(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to create availability slot",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

// UpdateAvailabilitySlot updates a slot owned by the calling provider
func UpdateAvailabilitySlot(c *fiber.Ctx) error {
	id := c.Params("id")

	var slot models.AvailabilitySlot
	if err := db.DB.First(&slot, id).Error; err != nil {
		notFound := utils.NewNotFoundError("availability slot not found")
		return c.Status(utils.HTTPStatus(notFound)).JSON(utils.NewErrorResponse(notFound))
	}

	if err := requireSlotOwner(c, &slot); err != nil {
		return c.Status(utils.HTTPStatus(err)).JSON(utils.NewErrorResponse(err))
	}

	var update models.AvailabilitySlot
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeValidation),
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	// Type and owner are fixed at creation.
	update.ID = slot.ID
	update.ProviderID = slot.ProviderID
	update.Type = slot.Type
	if err := update.Validate(); err != nil {
		return c.Status(utils.HTTPStatus(err)).JSON(utils.NewErrorResponse(err))
	}

	if err := db.DB.Model(&slot).Select("WeekDay", "StartClock", "EndClock", "StartsAt", "EndsAt", "Active").
		Updates(&update).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to update availability slot",
			Error:   err.Error(),
		})
	}
	return c.JSON(slot)
}

// DeleteAvailabilitySlot soft-deletes a slot, retaining it for audit
func DeleteAvailabilitySlot(c *fiber.Ctx) error {
	id := c.Params("id")

	var slot models.AvailabilitySlot
	if err := db.DB.First(&slot, id).Error; err != nil {
		notFound := utils.NewNotFoundError("availability slot not found")
		return c.Status(utils.HTTPStatus(notFound)).JSON(utils.NewErrorResponse(notFound))
	}

	if err := requireSlotOwner(c, &slot); err != nil {
		return c.Status(utils.HTTPStatus(err)).JSON(utils.NewErrorResponse(err))
	}

	if err := db.DB.Delete(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to delete availability slot",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetProviderAvailability returns all active slots for a provider
func GetProviderAvailability(c *fiber.Ctx) error {
	providerID := c.Params("id")

	var slots []models.AvailabilitySlot
	if err := db.DB.Where("provider_id = ? AND active = ?", providerID, true).Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to fetch provider availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(slots)
}

// GetProviderRecurringAvailability returns only the weekly recurring slots
func GetProviderRecurringAvailability(c *fiber.Ctx) error {
	providerID := c.Params("id")

	var slots []models.AvailabilitySlot
	if err := db.DB.Where("provider_id = ? AND active = ? AND type = ?",
		providerID, true, models.SlotRecurring).Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to fetch recurring availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(slots)
}

// GetAvailabilityForDate lists, per provider, the slots that can produce
// availability on the given calendar day
func GetAvailabilityForDate(c *fiber.Ctx) error {
	date, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		bad := utils.NewValidationError("date must be in YYYY-MM-DD format")
		return c.Status(utils.HTTPStatus(bad)).JSON(utils.NewErrorResponse(bad))
	}

	var slots []models.AvailabilitySlot
	if err := db.DB.Where("active = ?", true).Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to fetch availability slots",
			Error:   err.Error(),
		})
	}

	matched := availability.SlotsForDate(slots, date)
	return c.JSON(fiber.Map{
		"date":  date.Format("2006-01-02"),
		"slots": matched,
		"count": len(matched),
	})
}

func requireSlotOwner(c *fiber.Ctx, slot *models.AvailabilitySlot) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return utils.NewAuthorizationError("user not found in context")
	}
	role, _ := c.Locals("role").(models.Role)
	if role == models.RoleAdmin || slot.ProviderID == userID {
		return nil
	}
	return utils.NewAuthorizationError("availability slot belongs to another provider")
}
