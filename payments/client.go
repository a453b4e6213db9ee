// Package payments wraps the hosted checkout provider: creating checkout
// sessions and verifying webhook signatures. The provider itself (billing,
// card handling, receipts) is an opaque external service.
package payments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

type Client struct {
	httpClient *http.Client
	apiURL     string
	shopID     string
	secretKey  string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiURL:     os.Getenv("PAYMENT_API_URL"),
		shopID:     os.Getenv("PAYMENT_SHOP_ID"),
		secretKey:  os.Getenv("PAYMENT_SECRET_KEY"),
	}
}

// CheckoutSession is the provider's answer to a session creation request.
type CheckoutSession struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	ConfirmationURL string `json:"confirmation_url"`
}

type checkoutRequest struct {
	Amount struct {
		Value    string `json:"value"`
		Currency string `json:"currency"`
	} `json:"amount"`
	Capture      bool   `json:"capture"`
	Description  string `json:"description"`
	Confirmation struct {
		Type      string `json:"type"`
		ReturnURL string `json:"return_url"`
	} `json:"confirmation"`
}

type checkoutResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Confirmation struct {
		ConfirmationURL string `json:"confirmation_url"`
	} `json:"confirmation"`
}

// CreateCheckoutSession asks the provider for a redirect-style checkout
// session. amount is in minor currency units.
func (c *Client) CreateCheckoutSession(amount int64, currency, description, returnURL string) (*CheckoutSession, error) {
	var reqBody checkoutRequest
	reqBody.Amount.Value = fmt.Sprintf("%d.%02d", amount/100, amount%100)
	reqBody.Amount.Currency = currency
	reqBody.Capture = true
	reqBody.Description = description
	reqBody.Confirmation.Type = "redirect"
	reqBody.Confirmation.ReturnURL = returnURL

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.apiURL+"/payments", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	// The provider deduplicates retried requests by this key.
	req.Header.Set("Idempotence-Key", uuid.New().String())
	req.SetBasicAuth(c.shopID, c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("payment provider returned %s: %s", resp.Status, body)
	}

	var out checkoutResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}

	return &CheckoutSession{
		ID:              out.ID,
		Status:          out.Status,
		ConfirmationURL: out.Confirmation.ConfirmationURL,
	}, nil
}
