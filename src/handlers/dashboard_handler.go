package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/jackc/pgx/v5/pgxpool"
)

// recentTransactionLimit caps the "recent" slice on the dashboard response.
const recentTransactionLimit = 4

// GetDashboard fetches the user's transactions inside the reporting window
// plus all budgets, and derives summary stats. Everything is re-fetched on
// every call; nothing here is cached.
func GetDashboard(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		period := r.URL.Query().Get("period")
		if period == "" {
			period = "month"
		}

		start, end, err := util.PeriodWindow(period, time.Now())
		if err != nil {
			log.Printf("ERROR: Invalid dashboard period %q for user %d", period, userID)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		transactions, err := db.GetTransactionsInWindow(r.Context(), pool, int(userID), start, end)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for dashboard - user %d, period %s: %v", userID, period, err)
			http.Error(w, "failed to load dashboard data", http.StatusInternalServerError)
			return
		}

		budgets, err := db.GetAllBudgetsForUser(r.Context(), pool, int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get budgets for dashboard - user %d: %v", userID, err)
			http.Error(w, "failed to load dashboard data", http.StatusInternalServerError)
			return
		}

		recent := transactions
		if len(recent) > recentTransactionLimit {
			recent = recent[:recentTransactionLimit]
		}

		data := models.DashboardData{
			Stats:              models.ComputeStats(transactions),
			RecentTransactions: recent,
			AllTransactions:    transactions,
			Budgets:            budgets,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(data)
	}
}
