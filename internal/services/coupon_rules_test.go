package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopnile/storefront-backend/internal/models"
)

func intPtr(n int) *int { return &n }

func activeCoupon(kind models.DiscountType, value string) *models.Coupon {
	return &models.Coupon{
		Code:         "TEST123",
		DiscountType: kind,
		Value:        decimal.RequireFromString(value),
		IsActive:     true,
		Status:       models.StatusActive,
		ExpiresAt:    time.Now().Add(24 * time.Hour),
	}
}

func TestEvaluateCouponPercentage(t *testing.T) {
	c := activeCoupon(models.DiscountPercentage, "10")

	discount, newTotal, err := EvaluateCoupon(c, RedemptionCounts{}, 1, decimal.NewFromInt(10000), time.Now())
	require.NoError(t, err)
	assert.True(t, discount.Equal(decimal.NewFromInt(1000)), "discount = %s", discount)
	assert.True(t, newTotal.Equal(decimal.NewFromInt(9000)), "newTotal = %s", newTotal)
}

func TestEvaluateCouponPercentageRounding(t *testing.T) {
	c := activeCoupon(models.DiscountPercentage, "7.5")

	discount, _, err := EvaluateCoupon(c, RedemptionCounts{}, 1, decimal.RequireFromString("999.99"), time.Now())
	require.NoError(t, err)
	assert.True(t, discount.Equal(decimal.RequireFromString("75.00")), "discount = %s", discount)
}

func TestEvaluateCouponFlat(t *testing.T) {
	c := activeCoupon(models.DiscountFlat, "250")

	discount, newTotal, err := EvaluateCoupon(c, RedemptionCounts{}, 1, decimal.NewFromInt(1000), time.Now())
	require.NoError(t, err)
	assert.True(t, discount.Equal(decimal.NewFromInt(250)))
	assert.True(t, newTotal.Equal(decimal.NewFromInt(750)))
}

func TestEvaluateCouponFlatExceedsTotal(t *testing.T) {
	c := activeCoupon(models.DiscountFlat, "1000")

	discount, newTotal, err := EvaluateCoupon(c, RedemptionCounts{}, 1, decimal.NewFromInt(500), time.Now())
	require.NoError(t, err)
	assert.True(t, discount.Equal(decimal.NewFromInt(500)), "discount clamps to total, got %s", discount)
	assert.True(t, newTotal.IsZero(), "newTotal = %s", newTotal)
}

func TestEvaluateCouponInactive(t *testing.T) {
	c := activeCoupon(models.DiscountFlat, "100")
	c.IsActive = false

	_, newTotal, err := EvaluateCoupon(c, RedemptionCounts{}, 1, decimal.NewFromInt(500), time.Now())
	assert.ErrorIs(t, err, ErrCouponInactive)
	assert.True(t, newTotal.Equal(decimal.NewFromInt(500)), "total unchanged on failure")
}

func TestEvaluateCouponSoftDeleted(t *testing.T) {
	c := activeCoupon(models.DiscountFlat, "100")
	c.Status = models.StatusDeleted

	_, _, err := EvaluateCoupon(c, RedemptionCounts{}, 1, decimal.NewFromInt(500), time.Now())
	assert.ErrorIs(t, err, ErrCouponInactive)
}

func TestEvaluateCouponExpired(t *testing.T) {
	c := activeCoupon(models.DiscountFlat, "100")
	c.ExpiresAt = time.Now().Add(-time.Minute)

	_, _, err := EvaluateCoupon(c, RedemptionCounts{}, 1, decimal.NewFromInt(500), time.Now())
	assert.ErrorIs(t, err, ErrCouponExpired)
}

func TestEvaluateCouponGlobalLimit(t *testing.T) {
	c := activeCoupon(models.DiscountFlat, "100")
	c.UsageLimit = intPtr(3)

	_, _, err := EvaluateCoupon(c, RedemptionCounts{Total: 3}, 1, decimal.NewFromInt(500), time.Now())
	assert.ErrorIs(t, err, ErrCouponGlobalLimit)

	_, _, err = EvaluateCoupon(c, RedemptionCounts{Total: 2}, 1, decimal.NewFromInt(500), time.Now())
	assert.NoError(t, err)
}

func TestEvaluateCouponPerUserLimit(t *testing.T) {
	c := activeCoupon(models.DiscountFlat, "100")
	c.PerUserLimit = intPtr(1)

	_, _, err := EvaluateCoupon(c, RedemptionCounts{Total: 1, ByUser: 1}, 1, decimal.NewFromInt(500), time.Now())
	assert.ErrorIs(t, err, ErrCouponUserLimit)
}

func TestEvaluateCouponMinOrders(t *testing.T) {
	c := activeCoupon(models.DiscountPercentage, "10")
	c.MinOrders = 3

	_, _, err := EvaluateCoupon(c, RedemptionCounts{}, 2, decimal.NewFromInt(500), time.Now())
	assert.ErrorIs(t, err, ErrCouponMinOrders)

	// exactly at the minimum passes
	_, _, err = EvaluateCoupon(c, RedemptionCounts{}, 3, decimal.NewFromInt(500), time.Now())
	assert.NoError(t, err)
}

func TestEvaluateCouponNil(t *testing.T) {
	_, _, err := EvaluateCoupon(nil, RedemptionCounts{}, 1, decimal.NewFromInt(500), time.Now())
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestEvaluateCouponCheckOrdering(t *testing.T) {
	// An inactive, expired, exhausted coupon reports inactive first.
	c := activeCoupon(models.DiscountFlat, "100")
	c.IsActive = false
	c.ExpiresAt = time.Now().Add(-time.Hour)
	c.UsageLimit = intPtr(1)

	_, _, err := EvaluateCoupon(c, RedemptionCounts{Total: 5}, 0, decimal.NewFromInt(500), time.Now())
	assert.ErrorIs(t, err, ErrCouponInactive)
}

func TestRawDiscountUnclamped(t *testing.T) {
	c := activeCoupon(models.DiscountFlat, "1000")

	raw := RawDiscount(c, decimal.NewFromInt(500))
	assert.True(t, raw.Equal(decimal.NewFromInt(1000)), "raw discount is not clamped")
}
