package models

import "fmt"

// Plan maps a paid tier to its Razorpay price. Amounts are in the smallest
// currency unit (paise).
type Plan struct {
	Name      string
	Amount    int64
	Currency  string
	TrialDays int
}

func PlanByType(planType string) (Plan, error) {
	switch planType {
	case "Premium":
		return Plan{Name: "Premium", Amount: 74900, Currency: "INR", TrialDays: 7}, nil
	case "Organization":
		return Plan{Name: "Organization", Amount: 224900, Currency: "INR", TrialDays: 0}, nil
	}
	return Plan{}, fmt.Errorf("invalid plan type: %s", planType)
}
