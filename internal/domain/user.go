// internal/domain/user.go
package domain

import (
	"strings"
	"time"

	"spendtrack/internal/util"
)

// MaxUsernameLength bounds the username column.
const MaxUsernameLength = 150

// User represents a registered account.
type User struct {
	ID           int64     `db:"id" json:"id"`                 // Primary key, BIGSERIAL in DB
	Username     string    `db:"username" json:"username"`     // Unique username
	Email        string    `db:"email" json:"email"`           // Optional contact email
	PasswordHash string    `db:"password_hash" json:"-"`       // bcrypt hash, never serialized
	CreatedAt    time.Time `db:"created_at" json:"created_at"` // Timestamp of creation
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"` // Timestamp of last update
}

// NewUser creates a new User instance with the given credentials.
// passwordHash must already be a bcrypt hash; plaintext never reaches here.
func NewUser(username, email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ValidateRegistration checks the raw registration input before hashing.
func ValidateRegistration(username, password string) error {
	fieldErrs := util.FieldErrors{}
	if strings.TrimSpace(username) == "" {
		fieldErrs["username"] = "this field is required"
	} else if len(username) > MaxUsernameLength {
		fieldErrs["username"] = "must be at most 150 characters"
	}
	if password == "" {
		fieldErrs["password"] = "this field is required"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}
