package models

// DashboardStats is derived per request from the transactions inside the
// reporting window. It is never persisted or cached.
type DashboardStats struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpense     float64 `json:"totalExpense"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transactionCount"`
}

type DashboardData struct {
	Stats              DashboardStats `json:"stats"`
	RecentTransactions []Transaction  `json:"recentTransactions"`
	AllTransactions    []Transaction  `json:"allTransactions"`
	Budgets            []Budget       `json:"budgets"`
}

// ComputeStats sums the windowed transactions by type. Balance is always
// income minus expense and the count is the full row count.
func ComputeStats(transactions []Transaction) DashboardStats {
	var stats DashboardStats
	for _, t := range transactions {
		switch t.Type {
		case TransactionTypeIncome:
			stats.TotalIncome += t.Amount
		case TransactionTypeExpense:
			stats.TotalExpense += t.Amount
		}
	}
	stats.Balance = stats.TotalIncome - stats.TotalExpense
	stats.TransactionCount = len(transactions)
	return stats
}
