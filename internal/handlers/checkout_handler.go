package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/middleware"
	"github.com/shopnile/storefront-backend/internal/models"
	"github.com/shopnile/storefront-backend/internal/services"
)

type CheckoutHandler struct {
	db              *gorm.DB
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(db *gorm.DB, checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{db: db, checkoutService: checkoutService}
}

func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CheckoutRequest
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

	resp, err := h.checkoutService.Checkout(c.Context(), &user, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrCouponNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrCouponInactive),
			errors.Is(err, services.ErrCouponExpired),
			errors.Is(err, services.ErrCouponGlobalLimit),
			errors.Is(err, services.ErrCouponUserLimit),
			errors.Is(err, services.ErrCouponMinOrders):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Checkout failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}
