package controllers

import (
	"github.com/MohamedOscar3/booking-service-modules-sub001/db"
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/MohamedOscar3/booking-service-modules-sub001/utils"
	"github.com/gofiber/fiber/v2"
)

// GetAllServices returns the service catalog
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Preload("Category").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// GetService returns a service by ID
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.Preload("Category").Preload("Provider").First(&service, id).Error; err != nil {
		notFound := utils.NewNotFoundError("service not found")
		return c.Status(utils.HTTPStatus(notFound)).JSON(utils.NewErrorResponse(notFound))
	}
	service.Provider.Password = ""
	return c.JSON(service)
}

// CreateService adds a catalog entry owned by the calling provider
func CreateService(c *fiber.Ctx) error {
	var service models.Service
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeValidation),
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(models.Role)
	if role != models.RoleAdmin || service.ProviderID == 0 {
		service.ProviderID = userID
	}

	if service.Name == "" || service.Duration.ToDuration() <= 0 {
		bad := utils.NewValidationError("service requires a name and a positive duration")
		return c.Status(utils.HTTPStatus(bad)).JSON(utils.NewErrorResponse(bad))
	}

	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService updates a service owned by the calling provider
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		notFound := utils.NewNotFoundError("service not found")
		return c.Status(utils.HTTPStatus(notFound)).JSON(utils.NewErrorResponse(notFound))
	}

	if err := requireServiceOwner(c, &service); err != nil {
		return c.Status(utils.HTTPStatus(err)).JSON(utils.NewErrorResponse(err))
	}

	var update models.Service
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeValidation),
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&service).
		Select("Name", "Description", "Duration", "Price", "Active", "CategoryID").
		Updates(&update).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// DeleteService removes a service owned by the calling provider
func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		notFound := utils.NewNotFoundError("service not found")
		return c.Status(utils.HTTPStatus(notFound)).JSON(utils.NewErrorResponse(notFound))
	}

	if err := requireServiceOwner(c, &service); err != nil {
		return c.Status(utils.HTTPStatus(err)).JSON(utils.NewErrorResponse(err))
	}

	if err := db.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func requireServiceOwner(c *fiber.Ctx, service *models.Service) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return utils.NewAuthorizationError("user not found in context")
	}
	role, _ := c.Locals("role").(models.Role)
	if role == models.RoleAdmin || service.ProviderID == userID {
		return nil
	}
	return utils.NewAuthorizationError("service belongs to another provider")
}
