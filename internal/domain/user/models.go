package user

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidInput = errors.New("invalid input")
)

// User is the owning identity every core entity belongs to. The core never
// parses credentials; handlers resolve a request to a user id before any
// ledger, budget or savings call.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateParams contains parameters for registering a user.
type CreateParams struct {
	Email        string
	Name         string
	PasswordHash string
}

// Validate validates the create parameters.
func (p CreateParams) Validate() error {
	if strings.TrimSpace(p.Email) == "" || !strings.Contains(p.Email, "@") {
		return ErrInvalidInput
	}
	if p.PasswordHash == "" {
		return ErrInvalidInput
	}
	return nil
}
