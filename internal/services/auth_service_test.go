package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopnile/storefront-backend/internal/config"
	"github.com/shopnile/storefront-backend/internal/models"
)

func TestHashTokenDeterministic(t *testing.T) {
	a := hashToken("some-refresh-token")
	b := hashToken("some-refresh-token")
	c := hashToken("other-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // hex sha256
}

func TestAccessTokenClaims(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: 15 * time.Minute,
	}
	svc := NewAuthService(nil, cfg)

	user := &models.User{
		ID:    uuid.New(),
		Email: "buyer@example.com",
		Role:  models.RoleCustomer,
	}

	signed, err := svc.generateAccessToken(user)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "buyer@example.com", claims["email"])
	assert.Equal(t, models.RoleCustomer, claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), exp.Time, time.Minute)
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "right-secret", JWTAccessExpiry: time.Minute}
	svc := NewAuthService(nil, cfg)

	signed, err := svc.generateAccessToken(&models.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}
