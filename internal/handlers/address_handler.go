package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/middleware"
	"github.com/shopnile/storefront-backend/internal/services"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

func (h *AddressHandler) List(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	// with_delivery adds a rough delivery window per address
	if c.QueryBool("with_delivery") {
		addresses, err := h.addressService.ListWithDelivery(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to list addresses",
			})
		}
		return c.JSON(addresses)
	}

	addresses, err := h.addressService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list addresses",
		})
	}
	return c.JSON(addresses)
}

func (h *AddressHandler) Create(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	address, err := h.addressService.Create(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create address",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(address)
}

func (h *AddressHandler) Update(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid address id",
		})
	}

	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	address, err := h.addressService.Update(userID, id, &req)
	if err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update address",
		})
	}

	return c.JSON(address)
}

func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid address id",
		})
	}

	if err := h.addressService.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete address",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Address deleted"})
}
