package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCouponRequest struct {
	Prefix       string          `json:"prefix,omitempty" validate:"omitempty,max=20,alphanum"`
	DiscountType string          `json:"discount_type" validate:"required,oneof=PERCENTAGE FLAT"`
	Value        decimal.Decimal `json:"value" validate:"required"`
	UsageLimit   *int            `json:"usage_limit,omitempty" validate:"omitempty,gt=0"`
	PerUserLimit *int            `json:"per_user_limit,omitempty" validate:"omitempty,gt=0"`
	ExpiresIn    int             `json:"expires_in_days,omitempty" validate:"omitempty,gt=0"`
	MinOrders    int             `json:"min_orders,omitempty" validate:"omitempty,gte=0"`
	ProductLimit *int            `json:"product_limit,omitempty" validate:"omitempty,gt=0"`
	Categories   []uuid.UUID     `json:"categories,omitempty"`
	Products     []uuid.UUID     `json:"products,omitempty"`
}

type PreviewCartItem struct {
	Price    decimal.Decimal `json:"price" validate:"required"`
	Quantity int             `json:"quantity" validate:"required,gt=0"`
}

type PreviewCouponRequest struct {
	Code  string            `json:"code" validate:"required"`
	Items []PreviewCartItem `json:"cart_items" validate:"required,dive"`
}

type PreviewCouponResponse struct {
	Success  bool            `json:"success"`
	Discount decimal.Decimal `json:"discount"`
}
