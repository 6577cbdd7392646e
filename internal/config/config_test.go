package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.paystack.co", cfg.PaystackBaseURL)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("7.5")))
	assert.True(t, cfg.ShippingFee.Equal(decimal.NewFromInt(500)))
	assert.True(t, cfg.FreeShippingThreshold.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, 10, cfg.LoyaltyOrderThreshold)
	assert.Equal(t, time.Hour, cfg.WishlistWatchInterval)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TAX_RATE", "5")
	t.Setenv("SHIPPING_FEE", "750")
	t.Setenv("LOYALTY_ORDER_THRESHOLD", "5")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")

	cfg := Load()

	assert.True(t, cfg.TaxRate.Equal(decimal.NewFromInt(5)))
	assert.True(t, cfg.ShippingFee.Equal(decimal.NewFromInt(750)))
	assert.Equal(t, 5, cfg.LoyaltyOrderThreshold)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY", "not-a-duration")
	t.Setenv("LOYALTY_ORDER_THRESHOLD", "many")

	cfg := Load()

	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 10, cfg.LoyaltyOrderThreshold)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "shop",
		DBPassword: "secret",
		DBName:     "storefront",
		DBSSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "sslmode=require")
	assert.Contains(t, dsn, "TimeZone=UTC")
}
