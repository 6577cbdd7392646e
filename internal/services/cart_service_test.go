package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shopnile/storefront-backend/internal/config"
)

func pricingConfig() *config.Config {
	return &config.Config{
		TaxRate:               decimal.RequireFromString("7.5"),
		ShippingFee:           decimal.NewFromInt(500),
		FreeShippingThreshold: decimal.NewFromInt(5000),
	}
}

func TestComputeTotalsBelowFreeShipping(t *testing.T) {
	totals := ComputeTotals(decimal.NewFromInt(1000), decimal.Zero, pricingConfig())

	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(75)), "tax = %s", totals.Tax)
	assert.True(t, totals.Shipping.Equal(decimal.NewFromInt(500)))
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(1575)), "grand = %s", totals.GrandTotal)
}

func TestComputeTotalsFreeShippingAtThreshold(t *testing.T) {
	totals := ComputeTotals(decimal.NewFromInt(5000), decimal.Zero, pricingConfig())

	assert.True(t, totals.Shipping.IsZero(), "shipping waived at the threshold")
	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(375)))
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(5375)))
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(decimal.Zero, decimal.Zero, pricingConfig())

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Shipping.IsZero(), "no shipping charge on an empty cart")
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestComputeTotalsWithDiscount(t *testing.T) {
	totals := ComputeTotals(decimal.NewFromInt(2000), decimal.NewFromInt(200), pricingConfig())

	// 2000 + 150 tax + 500 shipping - 200 discount
	assert.True(t, totals.Discount.Equal(decimal.NewFromInt(200)))
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(2450)), "grand = %s", totals.GrandTotal)
}

func TestComputeTotalsTaxRounding(t *testing.T) {
	totals := ComputeTotals(decimal.RequireFromString("99.99"), decimal.Zero, pricingConfig())

	// 7.49925 rounds to 7.50
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("7.50")), "tax = %s", totals.Tax)
}
