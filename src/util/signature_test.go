package util

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayment(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature_Valid(t *testing.T) {
	sig := signPayment("order_ABC123", "pay_XYZ789", "test_secret")
	assert.True(t, VerifyPaymentSignature("order_ABC123", "pay_XYZ789", sig, "test_secret"))
}

func TestVerifyPaymentSignature_WrongSecret(t *testing.T) {
	sig := signPayment("order_ABC123", "pay_XYZ789", "other_secret")
	assert.False(t, VerifyPaymentSignature("order_ABC123", "pay_XYZ789", sig, "test_secret"))
}

func TestVerifyPaymentSignature_TamperedOrder(t *testing.T) {
	sig := signPayment("order_ABC123", "pay_XYZ789", "test_secret")
	assert.False(t, VerifyPaymentSignature("order_TAMPERED", "pay_XYZ789", sig, "test_secret"))
}

func TestVerifyPaymentSignature_EmptySignature(t *testing.T) {
	assert.False(t, VerifyPaymentSignature("order_ABC123", "pay_XYZ789", "", "test_secret"))
}
