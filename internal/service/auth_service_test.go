// internal/service/auth_service_test.go
package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"spendtrack/internal/domain"
	"spendtrack/internal/util"
	"spendtrack/pkg/db"
)

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	return &sqlx.Tx{}, args.Error(1)
}

// authServiceFixture bundles the mocks behind an AuthService under test.
type authServiceFixture struct {
	userRepo    *MockUserRepository
	profileRepo *MockProfileRepository
	tokenRepo   *MockTokenRepository
	tx          *MockTxController
	service     AuthService
}

func newAuthServiceFixture() *authServiceFixture {
	f := &authServiceFixture{
		userRepo:    new(MockUserRepository),
		profileRepo: new(MockProfileRepository),
		tokenRepo:   new(MockTokenRepository),
		tx:          new(MockTxController),
	}
	f.service = NewAuthService(
		new(MockDBBeginner),
		new(MockDBExecutor),
		f.userRepo,
		f.profileRepo,
		f.tokenRepo,
		func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
			return f.tx, nil
		},
		func(tx db.TxController) error {
			return f.tx.Commit()
		},
		func(tx db.TxController) {
			_ = f.tx.Rollback()
		},
	)
	return f
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("SuccessCreatesUserAndProfile", func(t *testing.T) {
		f := newAuthServiceFixture()

		f.tx.On("Commit").Return(nil).Once()
		f.tx.On("Rollback").Return(nil).Maybe()
		f.userRepo.On("CreateUser", ctx, mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(2).(*domain.User).ID = 7
			}).Return(nil).Once()
		f.profileRepo.On("CreateProfile", ctx, mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.UserID == 7
		})).Return(nil).Once()

		user, err := f.service.Register(ctx, "alice", "alice@example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "alice", user.Username)

		// The stored hash must verify the original password and must not be it.
		assert.NotEqual(t, "s3cret", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))

		f.userRepo.AssertExpectations(t)
		f.profileRepo.AssertExpectations(t)
		f.tx.AssertExpectations(t)
	})

	t.Run("DuplicateUsernameIsValidationError", func(t *testing.T) {
		f := newAuthServiceFixture()

		f.tx.On("Rollback").Return(nil).Maybe()
		f.userRepo.On("CreateUser", ctx, mock.Anything, mock.Anything).
			Return(util.ErrDuplicateEntry).Once()

		_, err := f.service.Register(ctx, "alice", "", "s3cret")
		assert.ErrorIs(t, err, util.ErrValidation)

		var fieldErrs util.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, "username")
	})

	t.Run("MissingFieldsRejectedBeforeStorage", func(t *testing.T) {
		f := newAuthServiceFixture()

		_, err := f.service.Register(ctx, "", "", "")
		assert.ErrorIs(t, err, util.ErrValidation)
		f.userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	alice := &domain.User{ID: 7, Username: "alice", PasswordHash: string(hash)}

	t.Run("SuccessReturnsStoredKey", func(t *testing.T) {
		f := newAuthServiceFixture()

		f.userRepo.On("GetUserByUsername", ctx, mock.Anything, "alice").Return(alice, nil).Once()
		f.tokenRepo.On("GetOrCreateToken", ctx, mock.Anything, int64(7), mock.AnythingOfType("string")).
			Return("stored-key", nil).Once()

		key, err := f.service.Login(ctx, "alice", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "stored-key", key)
	})

	t.Run("RepeatedLoginsReturnSameKey", func(t *testing.T) {
		f := newAuthServiceFixture()

		f.userRepo.On("GetUserByUsername", ctx, mock.Anything, "alice").Return(alice, nil).Twice()
		// The repository upsert always yields the first persisted key,
		// regardless of the fresh candidate generated per login.
		f.tokenRepo.On("GetOrCreateToken", ctx, mock.Anything, int64(7), mock.AnythingOfType("string")).
			Return("stored-key", nil).Twice()

		first, err := f.service.Login(ctx, "alice", "s3cret")
		require.NoError(t, err)
		second, err := f.service.Login(ctx, "alice", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("UnknownUserAndWrongPasswordAreIndistinguishable", func(t *testing.T) {
		f := newAuthServiceFixture()

		f.userRepo.On("GetUserByUsername", ctx, mock.Anything, "ghost").Return(nil, util.ErrNotFound).Once()
		f.userRepo.On("GetUserByUsername", ctx, mock.Anything, "alice").Return(alice, nil).Once()

		_, unknownErr := f.service.Login(ctx, "ghost", "whatever")
		_, wrongPwErr := f.service.Login(ctx, "alice", "wrong")

		assert.ErrorIs(t, unknownErr, util.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongPwErr, util.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongPwErr.Error())

		f.tokenRepo.AssertNotCalled(t, "GetOrCreateToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidKeyResolvesUser", func(t *testing.T) {
		f := newAuthServiceFixture()
		alice := &domain.User{ID: 7, Username: "alice"}

		f.tokenRepo.On("GetUserByKey", ctx, mock.Anything, "good-key").Return(alice, nil).Once()

		user, err := f.service.Authenticate(ctx, "good-key")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
	})

	t.Run("UnknownKeyIsUnauthorized", func(t *testing.T) {
		f := newAuthServiceFixture()

		f.tokenRepo.On("GetUserByKey", ctx, mock.Anything, "bad-key").Return(nil, util.ErrNotFound).Once()

		_, err := f.service.Authenticate(ctx, "bad-key")
		assert.ErrorIs(t, err, util.ErrUnauthorized)
	})

	t.Run("EmptyKeyIsUnauthorized", func(t *testing.T) {
		f := newAuthServiceFixture()

		_, err := f.service.Authenticate(ctx, "")
		assert.ErrorIs(t, err, util.ErrUnauthorized)
		f.tokenRepo.AssertNotCalled(t, "GetUserByKey", mock.Anything, mock.Anything, mock.Anything)
	})
}
