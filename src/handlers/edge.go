package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"fintrack-server/src/middleware"
	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Helpers shared by the billing endpoints (manage-subscription,
// razorpay-checkout, verify-payment). These authenticate inline instead of
// going through the router middleware, and report every failure class as a
// 500 {"error": message} so the web client only handles one error shape.

func authenticateRequest(r *http.Request, pool *pgxpool.Pool) (*models.User, error) {
	claims, err := middleware.ParseTokenFromRequest(r)
	if err != nil {
		return nil, err
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	user, err := middleware.ResolveUser(r.Context(), pool, int64(userIDFloat))
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

func writeEdgeError(w http.ResponseWriter, fn, step string, err error) {
	log.Printf("ERROR: %s [%s] %v", fn, step, err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
