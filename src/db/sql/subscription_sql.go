package db

import (
	"context"
	"time"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CancelSubscription resets the subscriber row and the denormalized profile
// tier in one transaction so the two can never disagree. Cancelling an
// already-cancelled subscription lands on the same terminal state.
func CancelSubscription(ctx context.Context, pool *pgxpool.Pool, userID int) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO subscribers (user_id, subscribed, subscription_tier, subscription_end, updated_at)
		VALUES ($1, false, NULL, NULL, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET subscribed = false, subscription_tier = NULL, subscription_end = NULL, updated_at = NOW()
	`, userID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE profiles SET subscription_tier = $1, updated_at = NOW() WHERE user_id = $2
	`, models.DefaultTier, userID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ActivateSubscription is the counterpart transition run after a verified
// payment.
func ActivateSubscription(ctx context.Context, pool *pgxpool.Pool, userID int, tier string, end time.Time) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO subscribers (user_id, subscribed, subscription_tier, subscription_end, updated_at)
		VALUES ($1, true, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET subscribed = true, subscription_tier = $2, subscription_end = $3, updated_at = NOW()
	`, userID, tier, end)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE profiles SET subscription_tier = $1, updated_at = NOW() WHERE user_id = $2
	`, tier, userID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func GetSubscriptionStatus(ctx context.Context, pool *pgxpool.Pool, userID int) (models.SubscriptionStatus, error) {
	var sub models.Subscriber
	subPtr := &sub
	err := pool.QueryRow(ctx, `
		SELECT user_id, subscribed, subscription_tier, subscription_end, updated_at
		FROM subscribers WHERE user_id = $1
	`, userID).Scan(&sub.UserID, &sub.Subscribed, &sub.SubscriptionTier, &sub.SubscriptionEnd, &sub.UpdatedAt)
	if err != nil {
		if err != pgx.ErrNoRows {
			return models.SubscriptionStatus{}, err
		}
		subPtr = nil
	}

	var profileTier *string
	err = pool.QueryRow(ctx, `
		SELECT subscription_tier FROM profiles WHERE user_id = $1
	`, userID).Scan(&profileTier)
	if err != nil && err != pgx.ErrNoRows {
		return models.SubscriptionStatus{}, err
	}

	return models.StatusFrom(subPtr, profileTier), nil
}
