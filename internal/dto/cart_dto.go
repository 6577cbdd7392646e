package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopnile/storefront-backend/internal/models"
)

type AddToCartRequest struct {
	VariantID uuid.UUID `json:"variant_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// CartTotals is the computed money breakdown of a cart. GrandTotal is not
// clamped here; clamping happens only inside coupon application.
type CartTotals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Shipping   decimal.Decimal `json:"shipping"`
	Discount   decimal.Decimal `json:"discount"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

type CartResponse struct {
	Items  []models.CartItem `json:"items"`
	Totals CartTotals        `json:"totals"`
}
