// internal/repository/postgres/expense_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"spendtrack/internal/domain"
	"spendtrack/internal/repository"
	"spendtrack/internal/util"
)

// ExpenseRepository implements repository.ExpenseRepository for PostgreSQL.
// All queries filter on user_id, so rows owned by other users are
// indistinguishable from missing rows.
type ExpenseRepository struct {
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db *sqlx.DB) repository.ExpenseRepository {
	return &ExpenseRepository{}
}

// CreateExpense inserts a new expense into the database using the provided DBExecutor.
func (r *ExpenseRepository) CreateExpense(ctx context.Context, q repository.DBExecutor, expense *domain.Expense) error {
	query := `INSERT INTO expenses (user_id, title, amount, category, date, created_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := q.QueryRowContext(ctx, query, expense.UserID, expense.Title, expense.Amount, expense.Category, expense.Date, expense.CreatedAt).Scan(&expense.ID)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// ListExpensesByUserID returns all expenses owned by userID in insertion order.
func (r *ExpenseRepository) ListExpensesByUserID(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	query := `SELECT id, user_id, title, amount, category, date, created_at
              FROM expenses WHERE user_id = $1 ORDER BY id`
	err := q.SelectContext(ctx, &expenses, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for user %d: %w", userID, err)
	}
	return expenses, nil
}

// GetExpenseByID retrieves the expense with the given id owned by userID.
func (r *ExpenseRepository) GetExpenseByID(ctx context.Context, q repository.DBExecutor, userID, id int64) (*domain.Expense, error) {
	var expense domain.Expense
	query := `SELECT id, user_id, title, amount, category, date, created_at
              FROM expenses WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &expense, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get expense %d for user %d: %w", id, userID, err)
	}
	return &expense, nil
}

// UpdateExpense persists the mutable expense fields, keyed by (user, id).
func (r *ExpenseRepository) UpdateExpense(ctx context.Context, q repository.DBExecutor, expense *domain.Expense) error {
	query := `UPDATE expenses SET title = $1, amount = $2, category = $3, date = $4
              WHERE id = $5 AND user_id = $6`
	result, err := q.ExecContext(ctx, query, expense.Title, expense.Amount, expense.Category, expense.Date, expense.ID, expense.UserID)
	if err != nil {
		return fmt.Errorf("failed to update expense %d: %w", expense.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating expense %d: %w", expense.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteExpense permanently removes the expense with the given id owned by userID.
func (r *ExpenseRepository) DeleteExpense(ctx context.Context, q repository.DBExecutor, userID, id int64) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting expense %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
