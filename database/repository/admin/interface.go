package adminRepo

import (
	"time"

	"nextstop/models"
)

// AdminRepository defines methods for operator account access. Lookups only
// return active accounts; missing records are reported as (nil, nil).
type AdminRepository interface {
	// Create inserts a new admin record.
	Create(admin *models.Admin) error
	// GetByUsername retrieves an active admin by username.
	GetByUsername(username string) (*models.Admin, error)
	// GetByEmail retrieves an active admin by email address.
	GetByEmail(email string) (*models.Admin, error)
	// GetByLogin retrieves an active admin by username or email.
	GetByLogin(login string) (*models.Admin, error)
	// Update modifies an existing admin record.
	Update(admin *models.Admin) error
	// SetResetCode stores a password reset code and its expiry on the account.
	SetResetCode(email, code string, expiry time.Time) error
	// UpdatePassword replaces the password hash and clears any reset code.
	UpdatePassword(email, passwordHash string) error
}
