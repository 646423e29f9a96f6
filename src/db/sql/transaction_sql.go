package db

import (
	"context"
	"fmt"
	"time"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, txn *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, title, amount, type, category, date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, title, amount, type, category, date, description, created_at, updated_at
	`
	var t models.Transaction
	err := pool.QueryRow(ctx, query, txn.UserID, txn.Title, txn.Amount, txn.Type, txn.Category, txn.Date, txn.Description).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Type, &t.Category, &t.Date, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func GetTransactionByID(ctx context.Context, pool *pgxpool.Pool, userID, transactionID int) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, title, amount, type, category, date, description, created_at, updated_at
		FROM transactions WHERE id = $1 AND user_id = $2
	`
	var t models.Transaction
	err := pool.QueryRow(ctx, query, transactionID, userID).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Type, &t.Category, &t.Date, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func GetAllTransactionsForUser(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, title, amount, type, category, date, description, created_at, updated_at
		FROM transactions WHERE user_id = $1
		ORDER BY date DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// GetTransactionsInWindow returns the user's transactions with date inside
// [start, end], newest first. The dashboard recomputes its stats from this
// result on every call.
func GetTransactionsInWindow(ctx context.Context, pool *pgxpool.Pool, userID int, start, end time.Time) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, title, amount, type, category, date, description, created_at, updated_at
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC
	`
	rows, err := pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, txn *models.Transaction) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET title = $1, amount = $2, type = $3, category = $4, date = $5, description = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8
		RETURNING id, user_id, title, amount, type, category, date, description, created_at, updated_at
	`
	var t models.Transaction
	err := pool.QueryRow(ctx, query, txn.Title, txn.Amount, txn.Type, txn.Category, txn.Date, txn.Description, txn.ID, txn.UserID).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Type, &t.Category, &t.Date, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, userID, transactionID int) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found")
	}
	return nil
}

func scanTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Type, &t.Category, &t.Date, &t.Description, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
