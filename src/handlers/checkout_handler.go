package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/razorpay"
	"fintrack-server/src/util"

	"github.com/jackc/pgx/v5/pgxpool"
)

// subscriptionLength is how far out subscription_end is set after a
// verified payment. Renewal pushes it forward again.
const subscriptionLength = 30 * 24 * time.Hour

// CreateCheckoutOrder prices the selected plan and creates a Razorpay order
// the client-side checkout widget resumes from. The order is not persisted
// locally; reconciliation happens through payment verification.
func CreateCheckoutOrder(rzp *razorpay.Client, pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticateRequest(r, pool)
		if err != nil {
			writeEdgeError(w, "razorpay-checkout", "auth", err)
			return
		}

		var req struct {
			PlanType string `json:"planType"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeEdgeError(w, "razorpay-checkout", "parse", fmt.Errorf("invalid request body"))
			return
		}

		plan, err := models.PlanByType(req.PlanType)
		if err != nil {
			writeEdgeError(w, "razorpay-checkout", "plan", err)
			return
		}

		if rzp.KeyID == "" || rzp.KeySecret == "" {
			writeEdgeError(w, "razorpay-checkout", "config", fmt.Errorf("razorpay credentials are not configured"))
			return
		}

		receipt := fmt.Sprintf("rcpt_%d_%d", user.ID, time.Now().UnixNano())
		order, err := rzp.CreateOrder(r.Context(), razorpay.OrderRequest{
			Amount:   plan.Amount,
			Currency: plan.Currency,
			Receipt:  receipt,
			Notes: map[string]string{
				"user_id":    strconv.Itoa(user.ID),
				"email":      user.Email,
				"plan_type":  plan.Name,
				"trial_days": strconv.Itoa(plan.TrialDays),
			},
		})
		if err != nil {
			writeEdgeError(w, "razorpay-checkout", "create_order", err)
			return
		}

		log.Printf("INFO: Created razorpay order %s for user %d, plan %s", order.ID, user.ID, plan.Name)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"orderId":   order.ID,
			"amount":    order.Amount,
			"currency":  order.Currency,
			"keyId":     rzp.KeyID,
			"planName":  plan.Name,
			"trialDays": plan.TrialDays,
		})
	}
}

// VerifyPayment checks the signature Razorpay hands the client after a
// successful payment and activates the subscription.
func VerifyPayment(rzp *razorpay.Client, pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticateRequest(r, pool)
		if err != nil {
			writeEdgeError(w, "verify-payment", "auth", err)
			return
		}

		var req struct {
			RazorpayOrderID   string `json:"razorpay_order_id"`
			RazorpayPaymentID string `json:"razorpay_payment_id"`
			RazorpaySignature string `json:"razorpay_signature"`
			PlanType          string `json:"planType"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeEdgeError(w, "verify-payment", "parse", fmt.Errorf("invalid request body"))
			return
		}

		plan, err := models.PlanByType(req.PlanType)
		if err != nil {
			writeEdgeError(w, "verify-payment", "plan", err)
			return
		}

		if !util.VerifyPaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, rzp.KeySecret) {
			writeEdgeError(w, "verify-payment", "signature", fmt.Errorf("payment signature mismatch"))
			return
		}

		end := time.Now().Add(subscriptionLength)
		if err := db.ActivateSubscription(r.Context(), pool, user.ID, plan.Name, end); err != nil {
			writeEdgeError(w, "verify-payment", "activate", err)
			return
		}

		log.Printf("INFO: Subscription activated for user %d, plan %s, order %s", user.ID, plan.Name, req.RazorpayOrderID)

		writeJSON(w, http.StatusOK, models.SubscriptionStatus{
			Subscribed:       true,
			SubscriptionTier: plan.Name,
			SubscriptionEnd:  &end,
		})
	}
}
