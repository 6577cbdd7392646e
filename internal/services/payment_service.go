package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopnile/storefront-backend/internal/config"
	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/models"
	"github.com/shopnile/storefront-backend/internal/paystack"
)

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPaymentFailed       = errors.New("payment verification failed")
	ErrPaymentNotConfirmed = errors.New("payment is not awaiting confirmation")
	ErrOrderNotFound       = errors.New("order not found")
)

type PaymentService struct {
	db            *gorm.DB
	cfg           *config.Config
	gateway       *paystack.Client
	coupons       *CouponService
	notifications *NotificationService
}

func NewPaymentService(db *gorm.DB, cfg *config.Config, gateway *paystack.Client, coupons *CouponService, notifications *NotificationService) *PaymentService {
	return &PaymentService{
		db:            db,
		cfg:           cfg,
		gateway:       gateway,
		coupons:       coupons,
		notifications: notifications,
	}
}

// HandleCallback finalizes a payment after the provider redirects back.
// Re-invoking it for an already-completed payment is a no-op: the status
// transition is conditional, so the loyalty coupon cannot be minted twice.
func (s *PaymentService) HandleCallback(ctx context.Context, reference string, orderID uuid.UUID) (*dto.CallbackResponse, error) {
	var payment models.Payment
	err := s.db.Where("reference = ? AND order_id = ?", reference, orderID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	if payment.Status == models.PaymentCompleted {
		return &dto.CallbackResponse{Status: "already_completed", OrderID: orderID.String()}, nil
	}

	// Manual bank transfers are confirmed by an admin, not by the provider.
	if payment.Method != models.PaymentMethodBankTransfer {
		if err := s.gateway.Verify(ctx, reference); err != nil {
			if errors.Is(err, paystack.ErrVerificationFailed) {
				return nil, ErrPaymentFailed
			}
			return nil, fmt.Errorf("provider verification call failed: %w", err)
		}
	}

	couponCode, err := s.finalize(payment.ID, orderID)
	if err != nil {
		return nil, err
	}

	return &dto.CallbackResponse{
		Status:     "success",
		OrderID:    orderID.String(),
		CouponCode: couponCode,
	}, nil
}

// finalize transitions payment and order state and mints the loyalty coupon
// when the user's delivered-order count crosses the threshold exactly.
func (s *PaymentService) finalize(paymentID, orderID uuid.UUID) (string, error) {
	var order models.Order
	var deliveredCount int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Conditional transition keeps the callback idempotent under
		// concurrent re-delivery.
		result := tx.Model(&models.Payment{}).
			Where("id = ? AND status IN ?", paymentID,
				[]models.PaymentStatus{models.PaymentPending, models.PaymentPendingConfirmation}).
			Update("status", models.PaymentCompleted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPaymentNotFound
		}

		if err := tx.Preload("User").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if err := tx.Model(&order).Update("status", models.OrderDelivered).Error; err != nil {
			return err
		}

		return tx.Model(&models.Order{}).
			Where("user_id = ? AND status = ?", order.UserID, models.OrderDelivered).
			Count(&deliveredCount).Error
	})
	if err != nil {
		return "", err
	}

	s.notifications.Notify(order.UserID, models.NotificationPayment,
		"Payment Received",
		fmt.Sprintf("Payment for order #%s is complete. Your order is on its way.", shortID(orderID)))

	if int(deliveredCount) != s.cfg.LoyaltyOrderThreshold {
		return "", nil
	}

	usageLimit, perUserLimit := 3, 1
	coupon, err := s.coupons.Generate(GenerateCouponParams{
		Prefix:       "AUTO",
		DiscountType: models.DiscountPercentage,
		Value:        decimal.NewFromInt(10),
		UsageLimit:   &usageLimit,
		PerUserLimit: &perUserLimit,
		MinOrders:    0,
	})
	if err != nil {
		return "", fmt.Errorf("failed to mint loyalty coupon: %w", err)
	}

	s.notifications.Notify(order.UserID, models.NotificationCoupon,
		"Congrats! Your Exclusive Coupon is Here",
		fmt.Sprintf("You've earned %s%% off your next purchase. Use code %s before %s.",
			coupon.Value.String(), coupon.Code, coupon.ExpiresAt.Format("Jan 2, 2006")))

	return coupon.Code, nil
}

// UploadReceipt records a bank-transfer receipt and moves the payment to
// PENDING_CONFIRMATION for admin review.
func (s *PaymentService) UploadReceipt(userID, orderID uuid.UUID, receiptPath string) error {
	var order models.Order
	if err := s.db.First(&order, "id = ? AND user_id = ?", orderID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	result := s.db.Model(&models.Payment{}).
		Where("order_id = ? AND status IN ?", orderID,
			[]models.PaymentStatus{models.PaymentPending, models.PaymentPendingConfirmation}).
		Updates(map[string]interface{}{
			"receipt": receiptPath,
			"status":  models.PaymentPendingConfirmation,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// ConfirmPayment is the privileged finalization of a manual bank transfer.
func (s *PaymentService) ConfirmPayment(orderID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Payment{}).
			Where("order_id = ? AND status = ?", orderID, models.PaymentPendingConfirmation).
			Update("status", models.PaymentCompleted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPaymentNotConfirmed
		}

		result = tx.Model(&models.Order{}).
			Where("id = ?", orderID).
			Update("status", models.OrderDelivered)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrOrderNotFound
		}
		return nil
	})
}
