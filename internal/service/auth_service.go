// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"spendtrack/internal/domain"
	"spendtrack/internal/repository"
	"spendtrack/internal/util"
	"spendtrack/pkg/db"
)

// AuthService defines the interface for identity-related business logic.
type AuthService interface {
	// Register creates a user with a hashed password plus their empty profile.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login exchanges credentials for the user's opaque token key. The same
	// key is returned on every successful login; tokens are never rotated.
	Login(ctx context.Context, username, password string) (string, error)
	// Authenticate resolves a presented token key to its owning user.
	Authenticate(ctx context.Context, tokenKey string) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	dbBeginner  db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor  repository.DBExecutor // For single-statement operations (e.g., *sqlx.DB)
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	tokenRepo   repository.TokenRepository
	beginTx     db.BeginTxFunc
	commitTx    db.CommitTxFunc
	rollbackTx  db.RollbackTxFunc
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	tokenRepo repository.TokenRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) AuthService {
	return &authService{
		dbBeginner:  dbBeginner,
		dbExecutor:  dbExecutor,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
		beginTx:     beginTx,
		commitTx:    commitTx,
		rollbackTx:  rollbackTx,
	}
}

// Register validates the input, hashes the password, and creates the user
// together with their empty profile in a single transaction.
func (s *authService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if err := domain.ValidateRegistration(username, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: failed to hash password: %w", err)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("register: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("register: transaction controller does not implement DBExecutor")
	}

	user := domain.NewUser(username, email, string(hash))
	if err := s.userRepo.CreateUser(ctx, txExecutor, user); err != nil {
		if util.IsError(err, util.ErrDuplicateEntry) {
			return nil, util.FieldErrors{"username": "a user with that username already exists"}
		}
		return nil, fmt.Errorf("register: failed to create user: %w", err)
	}

	// Every user gets exactly one profile row, created here so that later
	// profile reads never have to handle a missing row for a valid account.
	if err := s.profileRepo.CreateProfile(ctx, txExecutor, domain.NewProfile(user.ID)); err != nil {
		return nil, fmt.Errorf("register: failed to create profile: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("register: failed to commit transaction: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns the user's token key, creating
// one atomically on first login. Unknown username and wrong password are
// reported identically so the response never reveals which field was wrong.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, s.dbExecutor, username)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return "", util.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	candidateKey, err := domain.NewTokenKey()
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	key, err := s.tokenRepo.GetOrCreateToken(ctx, s.dbExecutor, user.ID, candidateKey)
	if err != nil {
		return "", fmt.Errorf("login: failed to issue token: %w", err)
	}

	return key, nil
}

// Authenticate resolves a token key to its user. Unknown keys map to
// util.ErrUnauthorized.
func (s *authService) Authenticate(ctx context.Context, tokenKey string) (*domain.User, error) {
	if tokenKey == "" {
		return nil, util.ErrUnauthorized
	}

	user, err := s.tokenRepo.GetUserByKey(ctx, s.dbExecutor, tokenKey)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUnauthorized
		}
		return nil, fmt.Errorf("authenticate: failed to look up token: %w", err)
	}

	return user, nil
}
