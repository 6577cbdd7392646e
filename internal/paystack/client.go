package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

var ErrVerificationFailed = errors.New("paystack transaction not successful")

// Client is a minimal Paystack API client covering transaction initialize
// and verify. All calls carry a bounded timeout.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(baseURL, secretKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type initializeRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"` // kobo
	CallbackURL string `json:"callback_url,omitempty"`
	Currency    string `json:"currency,omitempty"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
	} `json:"data"`
}

// Transaction is the provider-side handle for an initialized payment.
type Transaction struct {
	AuthorizationURL string
	Reference        string
}

// Initialize creates a payment authorization for the given amount. The
// amount is converted to kobo (minor units) before sending.
func (c *Client) Initialize(ctx context.Context, email string, amount decimal.Decimal, callbackURL string) (*Transaction, error) {
	body := initializeRequest{
		Email:       email,
		Amount:      amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		CallbackURL: callbackURL,
		Currency:    "NGN",
	}

	var resp initializeResponse
	if err := c.post(ctx, "/transaction/initialize", body, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, fmt.Errorf("paystack initialize rejected: %s", resp.Message)
	}

	return &Transaction{
		AuthorizationURL: resp.Data.AuthorizationURL,
		Reference:        resp.Data.Reference,
	}, nil
}

// Verify checks a transaction by reference. Returns ErrVerificationFailed
// when the provider reports a non-success status.
func (c *Client) Verify(ctx context.Context, reference string) error {
	var resp verifyResponse
	if err := c.get(ctx, "/transaction/verify/"+url.PathEscape(reference), &resp); err != nil {
		return err
	}
	if !resp.Status || resp.Data.Status != "success" {
		return ErrVerificationFailed
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal paystack request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("paystack returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode paystack response: %w", err)
	}
	return nil
}
