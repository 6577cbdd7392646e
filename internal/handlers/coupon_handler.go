package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/models"
	"github.com/shopnile/storefront-backend/internal/services"
)

type CouponHandler struct {
	couponService *services.CouponService
}

func NewCouponHandler(couponService *services.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

func (h *CouponHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCouponRequest
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

	params := services.GenerateCouponParams{
		Prefix:       req.Prefix,
		DiscountType: models.DiscountType(req.DiscountType),
		Value:        req.Value,
		UsageLimit:   req.UsageLimit,
		PerUserLimit: req.PerUserLimit,
		MinOrders:    req.MinOrders,
		ProductLimit: req.ProductLimit,
		Categories:   req.Categories,
		Products:     req.Products,
	}
	if req.ExpiresIn > 0 {
		params.ExpiresIn = time.Duration(req.ExpiresIn) * 24 * time.Hour
	}

	coupon, err := h.couponService.Generate(params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create coupon",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(coupon)
}

func (h *CouponHandler) List(c *fiber.Ctx) error {
	coupons, err := h.couponService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list coupons",
		})
	}
	return c.JSON(coupons)
}

func (h *CouponHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid coupon id",
		})
	}

	coupon, err := h.couponService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrCouponNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load coupon",
		})
	}
	return c.JSON(coupon)
}

func (h *CouponHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid coupon id",
		})
	}

	if err := h.couponService.SoftDelete(id); err != nil {
		if errors.Is(err, services.ErrCouponNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete coupon",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Coupon deleted"})
}

func (h *CouponHandler) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid coupon id",
		})
	}

	if err := h.couponService.Restore(id); err != nil {
		if errors.Is(err, services.ErrCouponNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to restore coupon",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Coupon restored"})
}

// Preview estimates the discount a code would give on the posted cart
// without recording a redemption. Usage limits are not checked here; the
// authoritative validation runs at checkout.
func (h *CouponHandler) Preview(c *fiber.Ctx) error {
	var req dto.PreviewCouponRequest
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

	discount, err := h.couponService.PreviewDiscount(req.Code, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCouponNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrCouponInactive), errors.Is(err, services.ErrCouponExpired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to preview coupon",
		})
	}

	return c.JSON(dto.PreviewCouponResponse{Success: true, Discount: discount})
}
