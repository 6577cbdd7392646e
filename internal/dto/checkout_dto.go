package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutRequest struct {
	CouponCode string     `json:"coupon_code,omitempty"`
	AddressID  *uuid.UUID `json:"address_id,omitempty"`
	Email      string     `json:"email,omitempty" validate:"omitempty,email"`
	Method     string     `json:"method,omitempty" validate:"omitempty,oneof=PAYSTACK CARD BANK_TRANSFER"`
	// Shipping and Tax override the flat pricing rules when supplied;
	// otherwise the server computes both from configuration.
	Shipping *decimal.Decimal `json:"shipping,omitempty"`
	Tax      *decimal.Decimal `json:"tax,omitempty"`
}

type CheckoutResponse struct {
	OrderID    uuid.UUID       `json:"order_id"`
	PaymentURL string          `json:"payment_url,omitempty"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Discount   decimal.Decimal `json:"discount"`
	// PaymentPending is set when the provider call failed after the order
	// was committed; the payment can be re-initialized later.
	PaymentPending bool `json:"payment_pending,omitempty"`
}

type CallbackResponse struct {
	Status     string `json:"status"`
	OrderID    string `json:"order_id"`
	CouponCode string `json:"coupon_code,omitempty"`
}
