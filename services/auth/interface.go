package auth

import (
	"context"
	"time"

	adminRepo "nextstop/database/repository/admin"
	userRepo "nextstop/database/repository/user"
	"nextstop/models"
	"nextstop/utils"
)

// Token lifetimes issued on login.
const (
	UserTokenTTL  = time.Hour
	AdminTokenTTL = 24 * time.Hour
)

// RegisterUserRequest is the payload for passenger registration.
type RegisterUserRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	MobileNo        string `json:"mobileNo"`
	AltMobileNo     string `json:"altMobileNo"`
	DOB             string `json:"dob"`
	Address         string `json:"address"`
}

// RegisterAdminRequest is the payload for operator registration.
type RegisterAdminRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

// AuthResponse carries the issued token and the public identity fields.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// TokenCache stores hashes of issued tokens for the middleware fast path.
type TokenCache interface {
	Set(ctx context.Context, username, tokenHash string, ttl time.Duration) error
	Del(ctx context.Context, username string) error
}

// Service is the identity provider: registration, login, password reset and
// profile management for users and admins.
type Service interface {
	RegisterUser(req RegisterUserRequest) (*models.User, error)
	LoginUser(login, password string) (*AuthResponse, error)
	ForgotUserPassword(email string) error
	ResetUserPassword(email, code, newPassword string) error
	GetUserProfile(username string) (*models.User, error)
	UpdateUserProfile(username string, update models.User) (*models.User, error)

	RegisterAdmin(req RegisterAdminRequest) (*models.Admin, error)
	LoginAdmin(login, password string) (*AuthResponse, error)
	ForgotAdminPassword(email string) error
	ResetAdminPassword(email, code, newPassword string) error
	GetAdminProfile(username string) (*models.Admin, error)
	UpdateAdminProfile(username string, update models.Admin) (*models.Admin, error)
}

// DefaultAuthService implements Service. Cache is optional; when nil no token
// hashes are cached and the middleware always falls back to store lookups.
type DefaultAuthService struct {
	Users  userRepo.UserRepository
	Admins adminRepo.AdminRepository
	Mailer utils.Mailer
	Cache  TokenCache
}
