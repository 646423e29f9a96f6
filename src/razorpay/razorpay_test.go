package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateOrder_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		keyID, keySecret, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", keyID)
		assert.Equal(t, "rzp_test_secret", keySecret)

		var req OrderRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(74900), req.Amount)
		assert.Equal(t, "INR", req.Currency)
		assert.Equal(t, "rcpt_1_123", req.Receipt)
		assert.Equal(t, "Premium", req.Notes["plan_type"])

		json.NewEncoder(w).Encode(Order{
			ID:       "order_test123",
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Status:   "created",
		})
	}))
	defer server.Close()

	client := NewClient("rzp_test_key", "rzp_test_secret", server.URL)
	order, err := client.CreateOrder(context.Background(), OrderRequest{
		Amount:   74900,
		Currency: "INR",
		Receipt:  "rcpt_1_123",
		Notes:    map[string]string{"plan_type": "Premium"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "order_test123", order.ID)
	assert.Equal(t, int64(74900), order.Amount)
	assert.Equal(t, "INR", order.Currency)
}

func TestCreateOrder_ErrorSurfacesRawBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount missing"}}`))
	}))
	defer server.Close()

	client := NewClient("rzp_test_key", "rzp_test_secret", server.URL)
	_, err := client.CreateOrder(context.Background(), OrderRequest{Currency: "INR"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "amount missing")
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("k", "s", "")
	assert.Equal(t, DefaultBaseURL, client.BaseURL)
	assert.NotNil(t, client.HTTPClient)
}
