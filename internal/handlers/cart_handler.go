package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/middleware"
	"github.com/shopnile/storefront-backend/internal/services"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) Get(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	resp, err := h.cartService.GetCart(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load cart",
		})
	}

	return c.JSON(resp)
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var req dto.AddToCartRequest
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

	item, err := h.cartService.AddItem(userID, req.VariantID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrVariantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to add item to cart",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item id",
		})
	}

	var req dto.UpdateCartItemRequest
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

	item, err := h.cartService.UpdateItem(userID, itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update cart item",
		})
	}

	return c.JSON(item)
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item id",
		})
	}

	if err := h.cartService.RemoveItem(userID, itemID); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to remove cart item",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Item removed"})
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	if err := h.cartService.Clear(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to clear cart",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Cart cleared"})
}
