package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBalances_EqualSplit(t *testing.T) {
	members := []GroupMember{
		{UserID: 1, Username: "ana"},
		{UserID: 2, Username: "ben"},
	}
	expenses := []GroupExpense{
		{PaidBy: 1, Amount: 90},
		{PaidBy: 2, Amount: 30},
	}

	balances := ComputeBalances(members, expenses)
	assert.Len(t, balances, 2)
	assert.Equal(t, 60.0, balances[0].Share)
	assert.Equal(t, 30.0, balances[0].Net)  // ana paid 90, owes 60
	assert.Equal(t, -30.0, balances[1].Net) // ben paid 30, owes 60

	var sum float64
	for _, b := range balances {
		sum += b.Net
	}
	assert.Equal(t, 0.0, sum)
}

func TestComputeBalances_NoMembers(t *testing.T) {
	assert.Nil(t, ComputeBalances(nil, []GroupExpense{{PaidBy: 1, Amount: 10}}))
}

func TestComputeBalances_NoExpenses(t *testing.T) {
	members := []GroupMember{{UserID: 1, Username: "ana"}}
	balances := ComputeBalances(members, nil)
	assert.Len(t, balances, 1)
	assert.Equal(t, 0.0, balances[0].Paid)
	assert.Equal(t, 0.0, balances[0].Net)
}
