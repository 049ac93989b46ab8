// internal/api/handler/mocks_test.go
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"spendtrack/internal/api/middleware"
	"spendtrack/internal/domain"
	"spendtrack/internal/service"
	"spendtrack/internal/util"
)

// testUser is the account behind testTokenKey in handler tests.
var testUser = &domain.User{ID: 42, Username: "alice"}

const testTokenKey = "good-key"

// stubAuthenticator accepts exactly testTokenKey and rejects everything else.
type stubAuthenticator struct{}

func (stubAuthenticator) Authenticate(_ context.Context, tokenKey string) (*domain.User, error) {
	if tokenKey == testTokenKey {
		return testUser, nil
	}
	return nil, util.ErrUnauthorized
}

// newTestRouter mounts the handlers the way the real router does, with the
// token middleware in front of the protected routes.
func newTestRouter(expense *ExpenseHandler, profile *ProfileHandler) http.Handler {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.TokenAuth(stubAuthenticator{}, util.GetLogger()))
		if expense != nil {
			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", expense.List)
				r.Post("/", expense.Create)
				r.Route("/{expenseID}", func(r chi.Router) {
					r.Get("/", expense.Get)
					r.Put("/", expense.Update)
					r.Patch("/", expense.Update)
					r.Delete("/", expense.Delete)
				})
			})
		}
		if profile != nil {
			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profile.Get)
				r.Put("/", profile.Update)
				r.Patch("/", profile.Update)
			})
		}
	})
	return r
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	args := m.Called(ctx, username, email, password)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, tokenKey string) (*domain.User, error) {
	args := m.Called(ctx, tokenKey)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockExpenseService is a mock implementation of service.ExpenseService.
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) List(ctx context.Context, userID int64) ([]domain.Expense, error) {
	args := m.Called(ctx, userID)
	if expenses, ok := args.Get(0).([]domain.Expense); ok {
		return expenses, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseService) Create(ctx context.Context, userID int64, input service.CreateExpenseInput) (*domain.Expense, error) {
	args := m.Called(ctx, userID, input)
	if expense, ok := args.Get(0).(*domain.Expense); ok {
		return expense, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseService) Get(ctx context.Context, userID, expenseID int64) (*domain.Expense, error) {
	args := m.Called(ctx, userID, expenseID)
	if expense, ok := args.Get(0).(*domain.Expense); ok {
		return expense, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseService) Update(ctx context.Context, userID, expenseID int64, input service.UpdateExpenseInput) (*domain.Expense, error) {
	args := m.Called(ctx, userID, expenseID, input)
	if expense, ok := args.Get(0).(*domain.Expense); ok {
		return expense, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseService) Delete(ctx context.Context, userID, expenseID int64) error {
	args := m.Called(ctx, userID, expenseID)
	return args.Error(0)
}

// MockProfileService is a mock implementation of service.ProfileService.
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if profile, ok := args.Get(0).(*domain.Profile); ok {
		return profile, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, userID int64, input service.UpdateProfileInput, picture *service.PictureUpload) (*domain.Profile, error) {
	args := m.Called(ctx, userID, input, picture)
	if profile, ok := args.Get(0).(*domain.Profile); ok {
		return profile, args.Error(1)
	}
	return nil, args.Error(1)
}
