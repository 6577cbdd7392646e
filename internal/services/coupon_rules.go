package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopnile/storefront-backend/internal/models"
)

var (
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrCouponInactive    = errors.New("coupon is inactive")
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponGlobalLimit = errors.New("coupon usage limit reached")
	ErrCouponUserLimit   = errors.New("you have already used this coupon")
	ErrCouponMinOrders   = errors.New("cart does not meet the coupon's minimum item count")
)

// RedemptionCounts holds the redemption tallies the limit checks run against.
type RedemptionCounts struct {
	Total  int64
	ByUser int64
}

// EvaluateCoupon runs the full validation sequence against an already-loaded
// coupon and returns the discount and the clamped new total. Each failure
// short-circuits with its own sentinel so callers can tell the reasons apart.
// The caller is responsible for holding the coupon row locked when the counts
// must stay consistent with a subsequent redemption insert.
func EvaluateCoupon(c *models.Coupon, counts RedemptionCounts, lineCount int, total decimal.Decimal, now time.Time) (discount, newTotal decimal.Decimal, err error) {
	if c == nil {
		return decimal.Zero, total, ErrCouponNotFound
	}
	if !c.IsActive || c.Status == models.StatusDeleted {
		return decimal.Zero, total, ErrCouponInactive
	}
	if now.After(c.ExpiresAt) {
		return decimal.Zero, total, ErrCouponExpired
	}
	if c.UsageLimit != nil && counts.Total >= int64(*c.UsageLimit) {
		return decimal.Zero, total, ErrCouponGlobalLimit
	}
	if c.PerUserLimit != nil && counts.ByUser >= int64(*c.PerUserLimit) {
		return decimal.Zero, total, ErrCouponUserLimit
	}
	if lineCount < c.MinOrders {
		return decimal.Zero, total, ErrCouponMinOrders
	}

	discount = RawDiscount(c, total)
	// Clamp so the discount never drives the total negative.
	if discount.GreaterThan(total) {
		discount = total
	}
	return discount, total.Sub(discount), nil
}

// RawDiscount computes the unclamped discount a coupon yields on a total:
// a percentage of the total or the flat value directly.
func RawDiscount(c *models.Coupon, total decimal.Decimal) decimal.Decimal {
	if c.DiscountType == models.DiscountPercentage {
		return total.Mul(c.Value).Div(decimal.NewFromInt(100)).Round(2)
	}
	return c.Value
}
