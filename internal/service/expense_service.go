// internal/service/expense_service.go
package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"spendtrack/internal/domain"
	"spendtrack/internal/repository"
)

// CreateExpenseInput carries the client-supplied fields for a new expense.
// The owner is never part of the input; it always comes from the session.
type CreateExpenseInput struct {
	Title    string
	Amount   decimal.Decimal
	Category string
	Date     domain.Date
}

// UpdateExpenseInput carries a partial update; nil fields keep their
// stored values.
type UpdateExpenseInput struct {
	Title    *string
	Amount   *decimal.Decimal
	Category *string
	Date     *domain.Date
}

// ExpenseService defines the interface for expense-related business logic.
// Every operation is scoped to the calling user: an expense owned by someone
// else behaves exactly like one that does not exist.
type ExpenseService interface {
	List(ctx context.Context, userID int64) ([]domain.Expense, error)
	Create(ctx context.Context, userID int64, input CreateExpenseInput) (*domain.Expense, error)
	Get(ctx context.Context, userID, expenseID int64) (*domain.Expense, error)
	Update(ctx context.Context, userID, expenseID int64, input UpdateExpenseInput) (*domain.Expense, error)
	Delete(ctx context.Context, userID, expenseID int64) error
}

// expenseService implements the ExpenseService interface.
type expenseService struct {
	dbExecutor  repository.DBExecutor
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new instance of ExpenseService.
func NewExpenseService(dbExecutor repository.DBExecutor, expenseRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{
		dbExecutor:  dbExecutor,
		expenseRepo: expenseRepo,
	}
}

// List returns all expenses owned by userID.
func (s *expenseService) List(ctx context.Context, userID int64) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpensesByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Create validates the input and persists a new expense owned by userID.
func (s *expenseService) Create(ctx context.Context, userID int64, input CreateExpenseInput) (*domain.Expense, error) {
	expense := domain.NewExpense(userID, input.Title, input.Amount, input.Category, input.Date)
	if err := expense.Validate(); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.CreateExpense(ctx, s.dbExecutor, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return expense, nil
}

// Get returns the expense with the given id if userID owns it.
func (s *expenseService) Get(ctx context.Context, userID, expenseID int64) (*domain.Expense, error) {
	expense, err := s.expenseRepo.GetExpenseByID(ctx, s.dbExecutor, userID, expenseID)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// Update merges the partial input onto the stored expense, validates the
// merged record, and persists it. Fields absent from the input keep their
// stored values.
func (s *expenseService) Update(ctx context.Context, userID, expenseID int64, input UpdateExpenseInput) (*domain.Expense, error) {
	expense, err := s.expenseRepo.GetExpenseByID(ctx, s.dbExecutor, userID, expenseID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		expense.Title = *input.Title
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}

	if err := expense.Validate(); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.UpdateExpense(ctx, s.dbExecutor, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete permanently removes the expense if userID owns it.
func (s *expenseService) Delete(ctx context.Context, userID, expenseID int64) error {
	return s.expenseRepo.DeleteExpense(ctx, s.dbExecutor, userID, expenseID)
}
