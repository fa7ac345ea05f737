package controllers

import (
	"github.com/MohamedOscar3/booking-service-modules-sub001/db"
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/MohamedOscar3/booking-service-modules-sub001/utils"
	"github.com/gofiber/fiber/v2"
)

// GetAllCategories returns every category
func GetAllCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := db.DB.Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to fetch categories",
			Error:   err.Error(),
		})
	}
	return c.JSON(categories)
}

// GetCategory returns a category by ID
func GetCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.Category
	if err := db.DB.Preload("Services").First(&category, id).Error; err != nil {
		notFound := utils.NewNotFoundError("category not found")
		return c.Status(utils.HTTPStatus(notFound)).JSON(utils.NewErrorResponse(notFound))
	}
	return c.JSON(category)
}

// CreateCategory adds a category (admin only, enforced by route middleware)
func CreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeValidation),
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if category.Name == "" {
		bad := utils.NewValidationError("category requires a name")
		return c.Status(utils.HTTPStatus(bad)).JSON(utils.NewErrorResponse(bad))
	}

	if err := db.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to create category",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory updates a category (admin only, enforced by route middleware)
func UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		notFound := utils.NewNotFoundError("category not found")
		return c.Status(utils.HTTPStatus(notFound)).JSON(utils.NewErrorResponse(notFound))
	}

	var update models.Category
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeValidation),
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&category).Select("Name", "Description").Updates(&update).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to update category",
			Error:   err.Error(),
		})
	}
	return c.JSON(category)
}

// DeleteCategory removes a category (admin only, enforced by route middleware)
func DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Delete(&models.Category{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to delete category",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
