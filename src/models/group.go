package models

import "time"

type Group struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedBy int       `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type GroupMember struct {
	GroupID  int    `json:"group_id"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

type GroupExpense struct {
	ID        int       `json:"id"`
	GroupID   int       `json:"group_id"`
	PaidBy    int       `json:"paid_by"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type MemberBalance struct {
	UserID   int     `json:"user_id"`
	Username string  `json:"username"`
	Paid     float64 `json:"paid"`
	Share    float64 `json:"share"`
	Net      float64 `json:"net"`
}

// ComputeBalances splits the group total equally across members. Net is what
// a member paid minus their share, so the nets always sum to zero.
func ComputeBalances(members []GroupMember, expenses []GroupExpense) []MemberBalance {
	if len(members) == 0 {
		return nil
	}
	paid := make(map[int]float64)
	var total float64
	for _, e := range expenses {
		paid[e.PaidBy] += e.Amount
		total += e.Amount
	}
	share := total / float64(len(members))
	balances := make([]MemberBalance, 0, len(members))
	for _, m := range members {
		balances = append(balances, MemberBalance{
			UserID:   m.UserID,
			Username: m.Username,
			Paid:     paid[m.UserID],
			Share:    share,
			Net:      paid[m.UserID] - share,
		})
	}
	return balances
}
