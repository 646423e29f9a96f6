package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ManageSubscription handles cancel and get_status. Authentication happens
// before any state is touched; cancel is idempotent and always lands on
// {subscribed=false, tier reset to the default}.
func ManageSubscription(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticateRequest(r, pool)
		if err != nil {
			writeEdgeError(w, "manage-subscription", "auth", err)
			return
		}

		var req struct {
			Action string `json:"action"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeEdgeError(w, "manage-subscription", "parse", fmt.Errorf("invalid request body"))
			return
		}

		switch req.Action {
		case "cancel":
			if err := db.CancelSubscription(r.Context(), pool, user.ID); err != nil {
				writeEdgeError(w, "manage-subscription", "cancel", err)
				return
			}
			log.Printf("INFO: Subscription cancelled for user %d", user.ID)
			writeJSON(w, http.StatusOK, models.SubscriptionStatus{
				Subscribed:       false,
				SubscriptionTier: models.DefaultTier,
			})
		case "get_status":
			status, err := db.GetSubscriptionStatus(r.Context(), pool, user.ID)
			if err != nil {
				writeEdgeError(w, "manage-subscription", "get_status", err)
				return
			}
			writeJSON(w, http.StatusOK, status)
		default:
			writeEdgeError(w, "manage-subscription", "parse", fmt.Errorf("invalid action: %s", req.Action))
		}
	}
}
