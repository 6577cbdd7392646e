package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFlat       DiscountType = "FLAT"
)

type Coupon struct {
	ID           uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code         string             `gorm:"size:50;not null;uniqueIndex" json:"code"`
	DiscountType DiscountType       `gorm:"size:20;not null" json:"discount_type"`
	Value        decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"value"`
	UsageLimit   *int               `json:"usage_limit,omitempty"`    // nil = unlimited
	PerUserLimit *int               `json:"per_user_limit,omitempty"` // nil = unlimited
	MinOrders    int                `gorm:"default:0" json:"min_orders"`
	ProductLimit *int               `json:"product_limit,omitempty"`
	ExpiresAt    time.Time          `gorm:"not null" json:"expires_at"`
	IsActive     bool               `gorm:"default:true" json:"is_active"`
	Status       EntityStatus       `gorm:"size:10;default:'active';index" json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Categories   []CouponCategory   `gorm:"foreignKey:CouponID" json:"categories,omitempty"`
	Products     []CouponProduct    `gorm:"foreignKey:CouponID" json:"products,omitempty"`
	Redemptions  []CouponRedemption `gorm:"foreignKey:CouponID" json:"redemptions,omitempty"`
}

type CouponCategory struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CouponID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_coupon_category" json:"coupon_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_coupon_category" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

type CouponProduct struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CouponID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_coupon_product" json:"coupon_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_coupon_product" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// CouponRedemption is the append-only audit row recording one successful use
// of a coupon; redemption counts enforce the usage limits.
type CouponRedemption struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CouponID   uuid.UUID `gorm:"type:uuid;not null;index" json:"coupon_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null" json:"order_id"`
	RedeemedAt time.Time `gorm:"autoCreateTime" json:"redeemed_at"`
}
