package userRepo

import (
	"time"

	"nextstop/models"
)

// UserRepository defines methods for passenger account access. Missing
// records are reported as (nil, nil).
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByUsername retrieves a user by username.
	GetByUsername(username string) (*models.User, error)
	// GetByEmail retrieves a user by email address.
	GetByEmail(email string) (*models.User, error)
	// GetByLogin retrieves a user by username or email (login form accepts both).
	GetByLogin(login string) (*models.User, error)
	// Update modifies an existing user record.
	Update(user *models.User) error
	// SetResetCode stores a password reset code and its expiry on the account.
	SetResetCode(email, code string, expiry time.Time) error
	// UpdatePassword replaces the password hash and clears any reset code.
	UpdatePassword(email, passwordHash string) error
}
