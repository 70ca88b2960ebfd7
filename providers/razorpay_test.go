package providers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	client := &razorpayClient{keySecret: "test_secret"}

	sig := signPayment("test_secret", "order_ABC123", "pay_XYZ789")
	assert.True(t, client.VerifySignature("order_ABC123", "pay_XYZ789", sig))

	assert.False(t, client.VerifySignature("order_ABC123", "pay_XYZ789", "deadbeef"))
	assert.False(t, client.VerifySignature("order_OTHER", "pay_XYZ789", sig))
	assert.False(t, client.VerifySignature("order_ABC123", "pay_OTHER", sig))

	wrongKey := signPayment("other_secret", "order_ABC123", "pay_XYZ789")
	assert.False(t, client.VerifySignature("order_ABC123", "pay_XYZ789", wrongKey))
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "key_id", user)
		require.Equal(t, "key_secret", pass)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, float64(50000), payload["amount"])
		require.Equal(t, "INR", payload["currency"])

		json.NewEncoder(w).Encode(map[string]any{
			"id":       "order_test1",
			"amount":   50000,
			"currency": "INR",
			"receipt":  payload["receipt"],
			"status":   "created",
		})
	}))
	defer server.Close()

	client := &razorpayClient{
		keyID:     "key_id",
		keySecret: "key_secret",
		baseURL:   server.URL,
		http:      server.Client(),
	}

	order, err := client.CreateOrder(50000, "INR", "rcpt_1", map[string]any{"user_id": 1})
	require.NoError(t, err)
	assert.Equal(t, "order_test1", order.ID)
	assert.Equal(t, int64(50000), order.Amount)
	assert.Equal(t, "created", order.Status)
}

func TestCreateOrderUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"description":"bad key"}}`))
	}))
	defer server.Close()

	client := &razorpayClient{baseURL: server.URL, http: server.Client()}

	_, err := client.CreateOrder(50000, "INR", "rcpt_1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
}
