// internal/repository/expense_repo.go
package repository

import (
	"context"

	"spendtrack/internal/domain"
)

// ExpenseRepository defines the interface for expense data operations.
// Every read and write is keyed by (user, id) or user alone, so a row
// owned by another user behaves exactly like a missing row.
type ExpenseRepository interface {
	// CreateExpense inserts a new expense using the provided DBExecutor.
	CreateExpense(ctx context.Context, q DBExecutor, expense *domain.Expense) error
	// ListExpensesByUserID returns all expenses owned by userID in insertion order.
	ListExpensesByUserID(ctx context.Context, q DBExecutor, userID int64) ([]domain.Expense, error)
	// GetExpenseByID retrieves the expense with the given id owned by userID.
	GetExpenseByID(ctx context.Context, q DBExecutor, userID, id int64) (*domain.Expense, error)
	// UpdateExpense persists the mutable fields of the given expense,
	// keyed by (user, id).
	UpdateExpense(ctx context.Context, q DBExecutor, expense *domain.Expense) error
	// DeleteExpense permanently removes the expense with the given id owned by userID.
	DeleteExpense(ctx context.Context, q DBExecutor, userID, id int64) error
}
