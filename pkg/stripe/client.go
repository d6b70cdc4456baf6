// Package stripe is a minimal client for the Stripe payment-intent API.
// Only the single call the checkout flow needs is implemented.
package stripe

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/shashiranjanraj/bistro-boss-server/pkg/httpclient"
)

// DefaultBaseURL is the production Stripe API root.
const DefaultBaseURL = "https://api.stripe.com/v1"

// PaymentIntent is the subset of Stripe's payment_intent object the
// application consumes. ClientSecret is handed to the browser to confirm
// the card payment.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// apiError mirrors Stripe's error envelope.
type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client calls the Stripe API with a fixed secret key.
type Client struct {
	secretKey string
	baseURL   string
}

// NewClient builds a client for the production API.
func NewClient(secretKey string) *Client {
	return &Client{secretKey: secretKey, baseURL: DefaultBaseURL}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(secretKey, baseURL string) *Client {
	return &Client{secretKey: secretKey, baseURL: baseURL}
}

// CreatePaymentIntent registers a card payment of amountCents (minor units)
// and returns the intent carrying the client secret. No local state is
// written; idempotency is whatever Stripe provides.
func (c *Client) CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (*PaymentIntent, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("stripe: amount must be positive, got %d", amountCents)
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", currency)
	form.Add("payment_method_types[]", "card")

	resp, err := httpclient.Post(c.baseURL+"/payment_intents").
		Bearer(c.secretKey).
		Form(form).
		Timeout(10 * time.Second).
		WithContext(ctx).
		Send()
	if err != nil {
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}

	if !resp.OK() {
		var e apiError
		if err := resp.JSON(&e); err == nil && e.Error.Message != "" {
			return nil, fmt.Errorf("stripe: create payment intent: %s (%s)", e.Error.Message, e.Error.Type)
		}
		return nil, fmt.Errorf("stripe: create payment intent: unexpected status %d", resp.StatusCode)
	}

	var intent PaymentIntent
	if err := resp.JSON(&intent); err != nil {
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}

	return &intent, nil
}
