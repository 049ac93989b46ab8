// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"
	"io"

	"github.com/stretchr/testify/mock"

	"spendtrack/internal/domain"
	"spendtrack/internal/repository"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockTxController is a mock transaction that also satisfies
// repository.DBExecutor by embedding MockDBExecutor.
type MockTxController struct {
	mock.Mock
	MockDBExecutor
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, q repository.DBExecutor, username string) (*domain.User, error) {
	args := m.Called(ctx, q, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockTokenRepository is a mock implementation of repository.TokenRepository.
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) GetOrCreateToken(ctx context.Context, q repository.DBExecutor, userID int64, candidateKey string) (string, error) {
	args := m.Called(ctx, q, userID, candidateKey)
	return args.String(0), args.Error(1)
}

func (m *MockTokenRepository) GetUserByKey(ctx context.Context, q repository.DBExecutor, key string) (*domain.User, error) {
	args := m.Called(ctx, q, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockProfileRepository is a mock implementation of repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, q repository.DBExecutor, profile *domain.Profile) error {
	args := m.Called(ctx, q, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetProfileByUserID(ctx context.Context, q repository.DBExecutor, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, q repository.DBExecutor, profile *domain.Profile) error {
	args := m.Called(ctx, q, profile)
	return args.Error(0)
}

// MockExpenseRepository is a mock implementation of repository.ExpenseRepository.
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) CreateExpense(ctx context.Context, q repository.DBExecutor, expense *domain.Expense) error {
	args := m.Called(ctx, q, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) ListExpensesByUserID(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Expense, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) GetExpenseByID(ctx context.Context, q repository.DBExecutor, userID, id int64) (*domain.Expense, error) {
	args := m.Called(ctx, q, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, q repository.DBExecutor, expense *domain.Expense) error {
	args := m.Called(ctx, q, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, q repository.DBExecutor, userID, id int64) error {
	args := m.Called(ctx, q, userID, id)
	return args.Error(0)
}

// MockBlobStore is a mock implementation of blobstore.Store.
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Save(ctx context.Context, key string, contentType string, r io.Reader) error {
	args := m.Called(ctx, key, contentType, r)
	return args.Error(0)
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
