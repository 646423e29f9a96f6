package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return s
}

func TestParseTokenFromRequest_MissingHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/manage-subscription", nil)
	_, err := ParseTokenFromRequest(r)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing token")
}

func TestParseTokenFromRequest_Valid(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	tokenString := signedToken(t, "test-secret", jwt.MapClaims{
		"user_id": 42,
		"email":   "user@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	r := httptest.NewRequest(http.MethodPost, "/api/manage-subscription", nil)
	r.Header.Set("Authorization", "Bearer "+tokenString)

	claims, err := ParseTokenFromRequest(r)
	assert.NoError(t, err)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "user@example.com", claims["email"])
}

func TestParseTokenFromRequest_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	tokenString := signedToken(t, "other-secret", jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	r := httptest.NewRequest(http.MethodPost, "/api/manage-subscription", nil)
	r.Header.Set("Authorization", "Bearer "+tokenString)

	_, err := ParseTokenFromRequest(r)
	assert.Error(t, err)
}

func TestParseTokenFromRequest_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	tokenString := signedToken(t, "test-secret", jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	r := httptest.NewRequest(http.MethodPost, "/api/manage-subscription", nil)
	r.Header.Set("Authorization", "Bearer "+tokenString)

	_, err := ParseTokenFromRequest(r)
	assert.Error(t, err)
}

func TestJWTAuthMiddleware_RejectsMissingToken(t *testing.T) {
	handler := JWTAuthMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
