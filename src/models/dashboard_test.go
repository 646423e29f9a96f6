package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats_Example(t *testing.T) {
	today := time.Now()
	transactions := []Transaction{
		{Amount: 100, Type: TransactionTypeIncome, Date: today},
		{Amount: 40, Type: TransactionTypeExpense, Date: today},
	}

	stats := ComputeStats(transactions)
	assert.Equal(t, 100.0, stats.TotalIncome)
	assert.Equal(t, 40.0, stats.TotalExpense)
	assert.Equal(t, 60.0, stats.Balance)
	assert.Equal(t, 2, stats.TransactionCount)
}

func TestComputeStats_BalanceInvariant(t *testing.T) {
	transactions := []Transaction{
		{Amount: 1200.50, Type: TransactionTypeIncome},
		{Amount: 300, Type: TransactionTypeExpense},
		{Amount: 99.99, Type: TransactionTypeExpense},
		{Amount: 50, Type: TransactionTypeIncome},
	}

	stats := ComputeStats(transactions)
	assert.Equal(t, stats.TotalIncome-stats.TotalExpense, stats.Balance)
	assert.Equal(t, len(transactions), stats.TransactionCount)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, 0.0, stats.TotalIncome)
	assert.Equal(t, 0.0, stats.TotalExpense)
	assert.Equal(t, 0.0, stats.Balance)
	assert.Equal(t, 0, stats.TransactionCount)
}

func TestComputeStats_IgnoresUnknownTypes(t *testing.T) {
	transactions := []Transaction{
		{Amount: 10, Type: "transfer"},
		{Amount: 5, Type: TransactionTypeIncome},
	}

	stats := ComputeStats(transactions)
	assert.Equal(t, 5.0, stats.TotalIncome)
	assert.Equal(t, 0.0, stats.TotalExpense)
	// Count reflects the full filtered set, not just recognized types.
	assert.Equal(t, 2, stats.TransactionCount)
}
