package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	cache "fintrack-server/src/db"
	"fintrack-server/src/models"
	"fintrack-server/src/razorpay"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

// seedAuthenticatedUser puts a user row in the auth cache and returns a
// bearer token for it, so edge-endpoint tests run without a database.
func seedAuthenticatedUser(t *testing.T, userID int, email string) string {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	if cache.Cache == nil {
		cache.InitCache()
	}
	cache.SetUserCache(cache.UserCacheKey(int64(userID)), &models.User{
		ID:       userID,
		Username: "tester",
		Email:    email,
	})
	cache.Cache.Wait()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return tokenString
}

// refusingRazorpay fails the test if any request reaches it.
func refusingRazorpay(t *testing.T) *razorpay.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no external call expected")
	}))
	t.Cleanup(server.Close)
	return razorpay.NewClient("rzp_test_key", "rzp_test_secret", server.URL)
}

func TestCreateCheckoutOrder_MissingBearer(t *testing.T) {
	rzp := refusingRazorpay(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/razorpay-checkout", strings.NewReader(`{"planType":"Premium"}`))

	CreateCheckoutOrder(rzp, nil)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestCreateCheckoutOrder_InvalidPlanMakesNoExternalCall(t *testing.T) {
	token := seedAuthenticatedUser(t, 7, "user@example.com")
	rzp := refusingRazorpay(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/razorpay-checkout", strings.NewReader(`{"planType":"Enterprise"}`))
	req.Header.Set("Authorization", "Bearer "+token)

	CreateCheckoutOrder(rzp, nil)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid plan type")
}

func TestCreateCheckoutOrder_MissingCredentials(t *testing.T) {
	token := seedAuthenticatedUser(t, 7, "user@example.com")
	rzp := razorpay.NewClient("", "", "")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/razorpay-checkout", strings.NewReader(`{"planType":"Premium"}`))
	req.Header.Set("Authorization", "Bearer "+token)

	CreateCheckoutOrder(rzp, nil)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}

func TestCreateCheckoutOrder_PremiumOrder(t *testing.T) {
	token := seedAuthenticatedUser(t, 7, "user@example.com")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/orders", r.URL.Path)
		w.Write([]byte(`{"id":"order_premium1","amount":74900,"currency":"INR","status":"created"}`))
	}))
	defer server.Close()
	rzp := razorpay.NewClient("rzp_test_key", "rzp_test_secret", server.URL)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/razorpay-checkout", strings.NewReader(`{"planType":"Premium"}`))
	req.Header.Set("Authorization", "Bearer "+token)

	CreateCheckoutOrder(rzp, nil)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"orderId":"order_premium1"`)
	assert.Contains(t, body, `"amount":74900`)
	assert.Contains(t, body, `"keyId":"rzp_test_key"`)
	assert.Contains(t, body, `"planName":"Premium"`)
	assert.Contains(t, body, `"trialDays":7`)
}

func TestVerifyPayment_BadSignature(t *testing.T) {
	token := seedAuthenticatedUser(t, 7, "user@example.com")
	rzp := razorpay.NewClient("rzp_test_key", "rzp_test_secret", "")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/verify-payment", strings.NewReader(
		`{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"bogus","planType":"Premium"}`))
	req.Header.Set("Authorization", "Bearer "+token)

	VerifyPayment(rzp, nil)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "signature mismatch")
}
