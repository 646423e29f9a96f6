package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("user@"))
	assert.False(t, ValidateEmail(""))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("Str0ng!pass"))
	assert.False(t, ValidatePassword("short1!"))
	assert.False(t, ValidatePassword("alllowercase1!"))
	assert.False(t, ValidatePassword("NoDigits!!"))
}

func TestValidateAmount(t *testing.T) {
	assert.True(t, ValidateAmount(0))
	assert.True(t, ValidateAmount(100.50))
	assert.False(t, ValidateAmount(-0.01))
}

func TestValidateTransactionType(t *testing.T) {
	assert.True(t, ValidateTransactionType("income"))
	assert.True(t, ValidateTransactionType("expense"))
	assert.False(t, ValidateTransactionType("transfer"))
	assert.False(t, ValidateTransactionType(""))
}
