package util

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// VerifyPaymentSignature checks the checksum Razorpay sends back after a
// client-side payment completes: HMAC-SHA256 over "orderID|paymentID"
// keyed with the API key secret.
// https://razorpay.com/docs/payments/payment-gateway/web-integration/standard/build-integration/
func VerifyPaymentSignature(orderID, paymentID, signature, keySecret string) bool {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
