package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManageSubscription_MissingBearer(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/manage-subscription", strings.NewReader(`{"action":"cancel"}`))

	ManageSubscription(nil)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestManageSubscription_InvalidAction(t *testing.T) {
	token := seedAuthenticatedUser(t, 9, "user@example.com")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/manage-subscription", strings.NewReader(`{"action":"upgrade"}`))
	req.Header.Set("Authorization", "Bearer "+token)

	ManageSubscription(nil)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid action")
}

func TestManageSubscription_MalformedBody(t *testing.T) {
	token := seedAuthenticatedUser(t, 9, "user@example.com")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/manage-subscription", strings.NewReader(`{`))
	req.Header.Set("Authorization", "Bearer "+token)

	ManageSubscription(nil)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}
