package models

import "time"

// DefaultTier is the free tier every user starts on and falls back to
// after a cancellation.
const DefaultTier = "Individual"

type Subscriber struct {
	UserID           int        `json:"user_id"`
	Subscribed       bool       `json:"subscribed"`
	SubscriptionTier *string    `json:"subscription_tier"`
	SubscriptionEnd  *time.Time `json:"subscription_end"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type SubscriptionStatus struct {
	Subscribed       bool       `json:"subscribed"`
	SubscriptionTier string     `json:"subscription_tier"`
	SubscriptionEnd  *time.Time `json:"subscription_end"`
}

// StatusFrom projects the subscriber row and the denormalized profile tier
// into a status response. The profile tier wins when both are present; a
// missing row on either side falls back to the default tier.
func StatusFrom(sub *Subscriber, profileTier *string) SubscriptionStatus {
	status := SubscriptionStatus{SubscriptionTier: DefaultTier}
	if sub != nil {
		status.Subscribed = sub.Subscribed
		status.SubscriptionEnd = sub.SubscriptionEnd
		if sub.SubscriptionTier != nil && *sub.SubscriptionTier != "" {
			status.SubscriptionTier = *sub.SubscriptionTier
		}
	}
	if profileTier != nil && *profileTier != "" {
		status.SubscriptionTier = *profileTier
	}
	return status
}
