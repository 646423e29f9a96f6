package api

import (
	"net/http"

	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"
	"fintrack-server/src/razorpay"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, rzpClient *razorpay.Client, isDemo bool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.DemoModeMiddleware(isDemo))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.Login(pool))
		r.Post("/register", handlers.Register(pool))

		// Billing endpoints authenticate inline and answer every failure
		// with 500 {"error": ...}; preflight OPTIONS is handled by the
		// CORS middleware.
		r.Post("/manage-subscription", handlers.ManageSubscription(pool))
		r.Post("/razorpay-checkout", handlers.CreateCheckoutOrder(rzpClient, pool))
		r.Post("/verify-payment", handlers.VerifyPayment(rzpClient, pool))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware(pool)).Group(func(r chi.Router) {
			// User
			r.Get("/user/{user_id}", handlers.GetUser(pool))
			r.Put("/user", handlers.UpdateUser(pool))
			r.Post("/user/change-password", handlers.ChangePassword(pool))
			r.Delete("/user", handlers.DeleteUser(pool))

			// Dashboard
			r.Get("/dashboard", handlers.GetDashboard(pool))

			// Transactions
			r.Post("/transactions", handlers.CreateTransaction(pool))
			r.Get("/transactions", handlers.GetAllTransactionsForUser(pool))
			r.Get("/transactions/{transaction_id}", handlers.GetTransactionByID(pool))
			r.Put("/transactions/{transaction_id}", handlers.UpdateTransaction(pool))
			r.Delete("/transactions/{transaction_id}", handlers.DeleteTransaction(pool))

			// Budgets
			r.Post("/budgets", handlers.CreateBudget(pool))
			r.Get("/budgets", handlers.GetAllBudgetsForUser(pool))
			r.Get("/budgets/{budget_id}", handlers.GetBudgetByID(pool))
			r.Put("/budgets/{budget_id}", handlers.UpdateBudget(pool))
			r.Delete("/budgets/{budget_id}", handlers.DeleteBudget(pool))

			// Groups
			r.Post("/groups", handlers.CreateGroup(pool))
			r.Get("/groups", handlers.GetGroupsForUser(pool))
			r.Post("/groups/{group_id}/members", handlers.AddGroupMember(pool))
			r.Post("/groups/{group_id}/expenses", handlers.CreateGroupExpense(pool))
			r.Get("/groups/{group_id}/expenses", handlers.GetGroupExpenses(pool))
		})
	})

	return r
}
