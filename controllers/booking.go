package controllers

import (
	"time"

	"github.com/MohamedOscar3/booking-service-modules-sub001/booking"
	"github.com/MohamedOscar3/booking-service-modules-sub001/db"
	"github.com/MohamedOscar3/booking-service-modules-sub001/models"
	"github.com/MohamedOscar3/booking-service-modules-sub001/utils"
	"github.com/gofiber/fiber/v2"
)

// Lifecycle is the booking lifecycle manager used by the handlers below.
// main wires it once at startup.
var Lifecycle *booking.Manager

// SetLifecycleManager injects the manager the booking handlers delegate to.
func SetLifecycleManager(m *booking.Manager) {
	Lifecycle = m
}

// CreateBooking books a service for the calling customer
func CreateBooking(c *fiber.Ctx) error {
	type CreateBookingRequest struct {
		ServiceID uint      `json:"service_id"`
		StartTime time.Time `json:"start_time"`
		Notes     string    `json:"notes"`
	}

	req := new(CreateBookingRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeValidation),
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	created, err := Lifecycle.Create(booking.CreateInput{
		CustomerID: userID,
		ServiceID:  req.ServiceID,
		StartTime:  req.StartTime,
		Notes:      req.Notes,
	})
	if err != nil {
		return c.Status(utils.HTTPStatus(err)).JSON(utils.NewErrorResponse(err))
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetBookings lists bookings visible to the caller: admins see everything,
// providers their schedule, customers their own bookings
func GetBookings(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(models.Role)

	query := db.DB.Preload("Service").Order("start_time asc")
	switch {
	case models.HasCapability(role, models.CapViewAllBookings):
		// no scoping
	case role == models.RoleProvider:
		query = query.Where("provider_id = ?", userID)
	default:
		query = query.Where("customer_id = ?", userID)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeInternal),
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// GetBooking returns one booking if the caller participates in it
func GetBooking(c *fiber.Ctx) error {
	id := c.Params("id")

	var b models.Booking
	if err := db.DB.Preload("Service").Preload("Provider").Preload("Customer").First(&b, id).Error; err != nil {
		notFound := utils.NewNotFoundError("booking not found")
		return c.Status(utils.HTTPStatus(notFound)).JSON(utils.NewErrorResponse(notFound))
	}

	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(models.Role)
	if role != models.RoleAdmin && b.CustomerID != userID && b.ProviderID != userID {
		err := utils.NewAuthorizationError("booking belongs to another user")
		return c.Status(utils.HTTPStatus(err)).JSON(utils.NewErrorResponse(err))
	}

	b.Customer.Password = ""
	b.Provider.Password = ""
	return c.JSON(b)
}

// UpdateBookingStatus moves a booking through its lifecycle
func UpdateBookingStatus(c *fiber.Ctx) error {
	type StatusRequest struct {
		Status models.BookingStatus `json:"status"`
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		bad := utils.NewValidationError("booking id must be a positive integer")
		return c.Status(utils.HTTPStatus(bad)).JSON(utils.NewErrorResponse(bad))
	}

	req := new(StatusRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Code:    string(utils.CodeValidation),
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(models.Role)

	updated, err := Lifecycle.ChangeStatus(uint(id), req.Status, userID, role)
	if err != nil {
		return c.Status(utils.HTTPStatus(err)).JSON(utils.NewErrorResponse(err))
	}
	return c.JSON(updated)
}
