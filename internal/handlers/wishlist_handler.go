package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/middleware"
	"github.com/shopnile/storefront-backend/internal/services"
)

type WishlistHandler struct {
	wishlistService *services.WishlistService
}

func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	items, err := h.wishlistService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list wishlist",
		})
	}
	return c.JSON(items)
}

func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	productID, err := uuid.Parse(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid product id",
		})
	}

	item, err := h.wishlistService.Add(userID, productID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrWishlistDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to add wishlist item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	productID, err := uuid.Parse(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid product id",
		})
	}

	if err := h.wishlistService.Remove(userID, productID); err != nil {
		if errors.Is(err, services.ErrWishlistNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to remove wishlist item",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Item removed from wishlist"})
}
