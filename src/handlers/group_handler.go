package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateGroup(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create group request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "group name is required", http.StatusBadRequest)
			return
		}

		group, err := db.CreateGroup(r.Context(), pool, req.Name, int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to create group for user %d: %v", userID, err)
			http.Error(w, "failed to create group", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created group id %d (%s) for user %d", group.ID, group.Name, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(group)
	}
}

func GetGroupsForUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		groups, err := db.GetGroupsForUser(r.Context(), pool, int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get groups for user %d: %v", userID, err)
			http.Error(w, "failed to get groups", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(groups)
	}
}

// requireGroupMembership parses the group_id URL param and checks the caller
// belongs to the group. A zero return means the response is already written.
func requireGroupMembership(w http.ResponseWriter, r *http.Request, pool *pgxpool.Pool, userID int64) int {
	groupIDStr := chi.URLParam(r, "group_id")
	groupID, err := strconv.Atoi(groupIDStr)
	if err != nil {
		log.Printf("ERROR: Invalid group id param: %s", groupIDStr)
		http.Error(w, "invalid group id", http.StatusBadRequest)
		return 0
	}
	member, err := db.IsGroupMember(r.Context(), pool, groupID, int(userID))
	if err != nil {
		log.Printf("ERROR: Failed membership check for group %d, user %d: %v", groupID, userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return 0
	}
	if !member {
		log.Printf("ERROR: User %d is not a member of group %d", userID, groupID)
		http.Error(w, "forbidden", http.StatusForbidden)
		return 0
	}
	return groupID
}

func AddGroupMember(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		groupID := requireGroupMembership(w, r, pool, userID)
		if groupID == 0 {
			return
		}

		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode add member request body for group %d: %v", groupID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		invitee, err := db.GetUserByEmail(r.Context(), pool, req.Email)
		if err != nil {
			log.Printf("ERROR: Invitee not found for group %d - email %s: %v", groupID, req.Email, err)
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		if err := db.AddGroupMember(r.Context(), pool, groupID, invitee.ID); err != nil {
			log.Printf("ERROR: Failed to add user %d to group %d: %v", invitee.ID, groupID, err)
			http.Error(w, "failed to add group member", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Added user %d to group %d", invitee.ID, groupID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "member added"})
	}
}

func CreateGroupExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		groupID := requireGroupMembership(w, r, pool, userID)
		if groupID == 0 {
			return
		}

		var req struct {
			Title  string  `json:"title"`
			Amount float64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode group expense request body for group %d: %v", groupID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if !util.ValidateAmount(req.Amount) {
			http.Error(w, "amount must be non-negative", http.StatusBadRequest)
			return
		}

		expense := &models.GroupExpense{
			GroupID: groupID,
			PaidBy:  int(userID),
			Title:   req.Title,
			Amount:  req.Amount,
		}
		created, err := db.CreateGroupExpense(r.Context(), pool, expense)
		if err != nil {
			log.Printf("ERROR: Failed to create expense in group %d for user %d: %v", groupID, userID, err)
			http.Error(w, "failed to create group expense", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created group expense id %d in group %d by user %d", created.ID, groupID, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetGroupExpenses(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		groupID := requireGroupMembership(w, r, pool, userID)
		if groupID == 0 {
			return
		}

		expenses, err := db.GetGroupExpenses(r.Context(), pool, groupID)
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for group %d: %v", groupID, err)
			http.Error(w, "failed to get group expenses", http.StatusInternalServerError)
			return
		}
		members, err := db.GetGroupMembers(r.Context(), pool, groupID)
		if err != nil {
			log.Printf("ERROR: Failed to get members for group %d: %v", groupID, err)
			http.Error(w, "failed to get group members", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"expenses": expenses,
			"balances": models.ComputeBalances(members, expenses),
		})
	}
}
