package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopnile/storefront-backend/internal/config"
	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/models"
	"github.com/shopnile/storefront-backend/internal/paystack"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")
)

type CheckoutService struct {
	db            *gorm.DB
	cfg           *config.Config
	gateway       *paystack.Client
	coupons       *CouponService
	notifications *NotificationService
}

func NewCheckoutService(db *gorm.DB, cfg *config.Config, gateway *paystack.Client, coupons *CouponService, notifications *NotificationService) *CheckoutService {
	return &CheckoutService{
		db:            db,
		cfg:           cfg,
		gateway:       gateway,
		coupons:       coupons,
		notifications: notifications,
	}
}

// Checkout turns the user's cart into an order in a single transaction:
// coupon validation, order + frozen-price items, conditional stock
// decrements, redemption, cart clearing and the payment row all commit or
// roll back together. The payment-provider call happens after commit; if it
// fails the order stays in a retryable pending state rather than failing
// the checkout.
func (s *CheckoutService) Checkout(ctx context.Context, user *models.User, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	method := req.Method
	if method == "" {
		method = models.PaymentMethodPaystack
	}

	var (
		order    models.Order
		payment  models.Payment
		discount decimal.Decimal
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Where("user_id = ?", user.ID).
			Preload("Items", func(db *gorm.DB) *gorm.DB {
				return db.Scopes(models.Active)
			}).
			Preload("Items.Variant").
			First(&cart).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmptyCart
			}
			return fmt.Errorf("failed to load cart: %w", err)
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		subtotal := decimal.Zero
		for _, item := range cart.Items {
			subtotal = subtotal.Add(item.Variant.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		totals := ComputeTotals(subtotal, decimal.Zero, s.cfg)
		shipping := totals.Shipping
		tax := totals.Tax
		if req.Shipping != nil {
			shipping = *req.Shipping
		}
		if req.Tax != nil {
			tax = *req.Tax
		}

		order = models.Order{
			ID:        uuid.New(),
			UserID:    user.ID,
			Status:    models.OrderPending,
			Total:     subtotal.Add(shipping).Add(tax),
			AddressID: req.AddressID,
		}

		if req.CouponCode != "" {
			// Validated against the pre-order subtotal and line count; any
			// failure aborts the whole transaction before the order exists.
			var couponID uuid.UUID
			discount, _, couponID, err = s.coupons.ValidateAndApply(
				tx, req.CouponCode, user.ID, order.ID, len(cart.Items), subtotal)
			if err != nil {
				return err
			}
			order.CouponID = &couponID
			order.Total = subtotal.Add(shipping).Add(tax).Sub(discount)
		}

		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range cart.Items {
			orderItem := models.OrderItem{
				ID:        uuid.New(),
				OrderID:   order.ID,
				ProductID: item.Variant.ProductID,
				VariantID: item.VariantID,
				Quantity:  item.Quantity,
				Price:     item.Variant.Price, // frozen at order time
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}

			// Conditional decrement: fails the whole checkout rather than
			// letting concurrent orders drive stock negative.
			result := tx.Model(&models.Variant{}).
				Where("id = ? AND stock >= ?", item.VariantID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return fmt.Errorf("failed to decrement stock: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrInsufficientStock
			}
		}

		if err := tx.Model(&models.CartItem{}).
			Where("cart_id = ? AND status = ?", cart.ID, models.StatusActive).
			Update("status", models.StatusDeleted).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		payment = models.Payment{
			ID:      uuid.New(),
			OrderID: order.ID,
			Amount:  order.Total,
			Method:  method,
			Status:  models.PaymentPending,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.CheckoutResponse{
		OrderID:    order.ID,
		GrandTotal: order.Total,
		Discount:   discount,
	}

	if method != models.PaymentMethodBankTransfer {
		email := req.Email
		if email == "" {
			email = user.Email
		}
		callbackURL := fmt.Sprintf("%s/api/payments/callback?orderId=%s", s.cfg.BaseURL, order.ID)

		txn, err := s.gateway.Initialize(ctx, email, order.Total, callbackURL)
		if err != nil {
			// The order is committed; a failed provider call is a retryable
			// state, not a checkout failure.
			slog.Error("payment initialization failed after checkout commit",
				"error", err, "order_id", order.ID.String(), "user_id", user.ID.String())
			resp.PaymentPending = true
		} else {
			if err := s.db.Model(&payment).Update("reference", txn.Reference).Error; err != nil {
				slog.Error("failed to persist payment reference",
					"error", err, "order_id", order.ID.String())
			}
			resp.PaymentURL = txn.AuthorizationURL
		}
	}

	s.notifications.Notify(user.ID, models.NotificationOrder,
		fmt.Sprintf("Order Confirmation #%s", shortID(order.ID)),
		fmt.Sprintf("Your order of %s has been placed and is awaiting payment.", order.Total.StringFixed(2)))
	s.notifications.NotifyAdmins(
		fmt.Sprintf("New Order Placed #%s", shortID(order.ID)),
		fmt.Sprintf("Order placed by %s (%s). Total: %s", user.Name, user.Email, order.Total.StringFixed(2)))

	return resp, nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
