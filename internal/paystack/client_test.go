package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConvertsToKobo(t *testing.T) {
	var got initializeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]string{
				"authorization_url": "https://checkout.paystack.com/abc123",
				"reference":         "ref_123",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_abc", 5*time.Second)
	tx, err := client.Initialize(context.Background(), "buyer@example.com", decimal.RequireFromString("1575.50"), "https://shop.example.com/cb")
	require.NoError(t, err)

	assert.Equal(t, int64(157550), got.Amount)
	assert.Equal(t, "NGN", got.Currency)
	assert.Equal(t, "buyer@example.com", got.Email)
	assert.Equal(t, "https://checkout.paystack.com/abc123", tx.AuthorizationURL)
	assert.Equal(t, "ref_123", tx.Reference)
}

func TestInitializeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  false,
			"message": "Invalid key",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_bad", 5*time.Second)
	_, err := client.Initialize(context.Background(), "buyer@example.com", decimal.NewFromInt(100), "")
	assert.ErrorContains(t, err, "Invalid key")
}

func TestVerifySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/ref_123", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": true,
			"data":   map[string]interface{}{"status": "success", "reference": "ref_123"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_abc", 5*time.Second)
	assert.NoError(t, client.Verify(context.Background(), "ref_123"))
}

func TestVerifyFailedTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": true,
			"data":   map[string]interface{}{"status": "abandoned"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_abc", 5*time.Second)
	assert.ErrorIs(t, client.Verify(context.Background(), "ref_123"), ErrVerificationFailed)
}

func TestServerErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_abc", 5*time.Second)
	err := client.Verify(context.Background(), "ref_123")
	assert.ErrorContains(t, err, "status 502")
}
