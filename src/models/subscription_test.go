package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestStatusFrom_NoRows(t *testing.T) {
	status := StatusFrom(nil, nil)
	assert.False(t, status.Subscribed)
	assert.Equal(t, DefaultTier, status.SubscriptionTier)
	assert.Nil(t, status.SubscriptionEnd)
}

func TestStatusFrom_ProfileTierWins(t *testing.T) {
	end := time.Now().Add(24 * time.Hour)
	sub := &Subscriber{
		Subscribed:       true,
		SubscriptionTier: strPtr("Premium"),
		SubscriptionEnd:  &end,
	}
	status := StatusFrom(sub, strPtr("Organization"))
	assert.True(t, status.Subscribed)
	assert.Equal(t, "Organization", status.SubscriptionTier)
	assert.Equal(t, &end, status.SubscriptionEnd)
}

func TestStatusFrom_SubscriberTierUsedWithoutProfile(t *testing.T) {
	sub := &Subscriber{Subscribed: true, SubscriptionTier: strPtr("Premium")}
	status := StatusFrom(sub, nil)
	assert.Equal(t, "Premium", status.SubscriptionTier)
}

func TestStatusFrom_AfterCancel(t *testing.T) {
	// A cancelled subscriber has nil tier/end; the profile has been reset.
	sub := &Subscriber{Subscribed: false}
	status := StatusFrom(sub, strPtr(DefaultTier))
	assert.False(t, status.Subscribed)
	assert.Equal(t, DefaultTier, status.SubscriptionTier)
	assert.Nil(t, status.SubscriptionEnd)
}
