// internal/domain/token.go
package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Token is the opaque bearer credential issued at login. Exactly one
// token exists per user; repeated logins return the same key.
type Token struct {
	Key       string    `db:"key" json:"token"`       // Random hex string, primary key
	UserID    int64     `db:"user_id" json:"-"`       // Owning user, unique
	CreatedAt time.Time `db:"created_at" json:"-"`    // Timestamp of issuance
}

// NewTokenKey returns a cryptographically random 64-character hex key.
func NewTokenKey() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token key: %w", err)
	}
	return hex.EncodeToString(b), nil
}
