package db

import (
	"context"
	"fmt"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateGroup inserts the group and adds the creator as its first member.
func CreateGroup(ctx context.Context, pool *pgxpool.Pool, name string, createdBy int) (*models.Group, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var g models.Group
	err = tx.QueryRow(ctx, `
		INSERT INTO groups (name, created_by)
		VALUES ($1, $2)
		RETURNING id, name, created_by, created_at
	`, name, createdBy).Scan(&g.ID, &g.Name, &g.CreatedBy, &g.CreatedAt)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)
	`, g.ID, createdBy)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &g, nil
}

func GetGroupsForUser(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Group, error) {
	query := `
		SELECT g.id, g.name, g.created_by, g.created_at
		FROM groups g
		JOIN group_members m ON m.group_id = g.id
		WHERE m.user_id = $1
		ORDER BY g.created_at DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedBy, &g.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func IsGroupMember(ctx context.Context, pool *pgxpool.Pool, groupID, userID int) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)
	`, groupID, userID).Scan(&exists)
	return exists, err
}

func AddGroupMember(ctx context.Context, pool *pgxpool.Pool, groupID, userID int) error {
	cmd, err := pool.Exec(ctx, `
		INSERT INTO group_members (group_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (group_id, user_id) DO NOTHING
	`, groupID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("user is already a group member")
	}
	return nil
}

func GetGroupMembers(ctx context.Context, pool *pgxpool.Pool, groupID int) ([]models.GroupMember, error) {
	query := `
		SELECT m.group_id, m.user_id, u.username
		FROM group_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.group_id = $1
		ORDER BY u.username
	`
	rows, err := pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.GroupMember
	for rows.Next() {
		var m models.GroupMember
		if err := rows.Scan(&m.GroupID, &m.UserID, &m.Username); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func CreateGroupExpense(ctx context.Context, pool *pgxpool.Pool, expense *models.GroupExpense) (*models.GroupExpense, error) {
	query := `
		INSERT INTO group_expenses (group_id, paid_by, title, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, group_id, paid_by, title, amount, created_at
	`
	var e models.GroupExpense
	err := pool.QueryRow(ctx, query, expense.GroupID, expense.PaidBy, expense.Title, expense.Amount).
		Scan(&e.ID, &e.GroupID, &e.PaidBy, &e.Title, &e.Amount, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func GetGroupExpenses(ctx context.Context, pool *pgxpool.Pool, groupID int) ([]models.GroupExpense, error) {
	query := `
		SELECT id, group_id, paid_by, title, amount, created_at
		FROM group_expenses
		WHERE group_id = $1
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.GroupExpense
	for rows.Next() {
		var e models.GroupExpense
		if err := rows.Scan(&e.ID, &e.GroupID, &e.PaidBy, &e.Title, &e.Amount, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
