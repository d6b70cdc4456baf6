package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1250", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, []string{"card"}, r.PostForm["payment_method_types[]"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "pi_1",
			"client_secret": "pi_1_secret_abc",
			"amount": 1250,
			"currency": "usd",
			"status": "requires_payment_method"
		}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("sk_test_123", srv.URL)

	intent, err := client.CreatePaymentIntent(context.Background(), 1250, "usd")
	require.NoError(t, err)

	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, "pi_1_secret_abc", intent.ClientSecret)
	assert.Equal(t, int64(1250), intent.Amount)
}

func TestCreatePaymentIntentRejectsNonPositiveAmount(t *testing.T) {
	client := NewClientWithBaseURL("sk_test_123", "http://unreachable.test")

	_, err := client.CreatePaymentIntent(context.Background(), 0, "usd")
	assert.Error(t, err)
}

func TestCreatePaymentIntentAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error": {"type": "card_error", "code": "card_declined", "message": "Your card was declined."}}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("sk_test_123", srv.URL)

	_, err := client.CreatePaymentIntent(context.Background(), 500, "usd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Your card was declined.")
	assert.Contains(t, err.Error(), "card_error")
}

func TestCreatePaymentIntentNonJSONFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("sk_test_123", srv.URL)

	_, err := client.CreatePaymentIntent(context.Background(), 500, "usd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}
