package handlers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shopnile/storefront-backend/internal/config"
	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/middleware"
	"github.com/shopnile/storefront-backend/internal/services"
)

type PaymentHandler struct {
	cfg            *config.Config
	paymentService *services.PaymentService
}

func NewPaymentHandler(cfg *config.Config, paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{cfg: cfg, paymentService: paymentService}
}

// Callback is the payment provider's redirect target. It verifies the
// transaction and finalizes the order; repeated calls are no-ops.
func (h *PaymentHandler) Callback(c *fiber.Ctx) error {
	reference := c.Query("reference")
	orderParam := c.Query("orderId")
	if reference == "" || orderParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "reference and orderId are required",
		})
	}

	orderID, err := uuid.Parse(orderParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid orderId",
		})
	}

	resp, err := h.paymentService.HandleCallback(c.Context(), reference, orderID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentNotFound), errors.Is(err, services.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrPaymentFailed):
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to process payment callback",
		})
	}

	return c.JSON(resp)
}

// UploadReceipt accepts a bank transfer receipt for the caller's own order
// and moves the payment to awaiting manual confirmation.
func (h *PaymentHandler) UploadReceipt(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid order id",
		})
	}

	file, err := c.FormFile("receipt")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "receipt file is required",
		})
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store receipt",
		})
	}

	filename := fmt.Sprintf("%s%s", orderID.String(), filepath.Ext(file.Filename))
	dest := filepath.Join(h.cfg.UploadDir, filename)
	if err := c.SaveFile(file, dest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store receipt",
		})
	}

	if err := h.paymentService.UploadReceipt(userID, orderID, dest); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrPaymentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to record receipt",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Receipt uploaded, awaiting confirmation"})
}

// Confirm lets an admin approve a bank transfer payment after checking the
// uploaded receipt.
func (h *PaymentHandler) Confirm(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid order id",
		})
	}

	if err := h.paymentService.ConfirmPayment(orderID); err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentNotFound), errors.Is(err, services.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrPaymentNotConfirmed):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to confirm payment",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Payment confirmed"})
}
