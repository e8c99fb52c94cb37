package auth

import (
	"fmt"
	"strings"

	"nextstop/models"
	"nextstop/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterAdmin creates a new operator account.
func (s *DefaultAuthService) RegisterAdmin(req RegisterAdminRequest) (*models.Admin, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, newInvalidRequest("All fields are required")
	}
	if req.Password != req.ConfirmPassword {
		return nil, newInvalidRequest("Passwords do not match")
	}
	if len(req.Password) < 6 {
		return nil, newInvalidRequest("Password must be at least 6 characters long")
	}

	if existing, err := s.Admins.GetByUsername(req.Username); err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	} else if existing != nil {
		return nil, newConflict("Admin with this username or email already exists")
	}
	if existing, err := s.Admins.GetByEmail(req.Email); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if existing != nil {
		return nil, newConflict("Admin with this username or email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}
	admin := &models.Admin{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.Admins.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// LoginAdmin authenticates an operator by username or email and issues a JWT.
func (s *DefaultAuthService) LoginAdmin(login, password string) (*AuthResponse, error) {
	if login == "" || password == "" {
		return nil, newInvalidRequest("Username and password are required")
	}

	admin, err := s.Admins.GetByLogin(login)
	if err != nil {
		utils.GetLogger().Error("LoginAdmin: failed to fetch admin", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if admin == nil {
		return nil, newUnauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, newUnauthorized("Invalid credentials")
	}

	token, err := utils.GenerateToken(admin.Username, admin.Email, admin.Role, AdminTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	s.cacheToken(admin.Username, token, AdminTokenTTL)

	return &AuthResponse{
		Token:    token,
		Username: admin.Username,
		Email:    admin.Email,
		Role:     admin.Role,
	}, nil
}

// ForgotAdminPassword issues a reset code for an operator account.
func (s *DefaultAuthService) ForgotAdminPassword(email string) error {
	admin, err := s.Admins.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to fetch admin: %w", err)
	}
	if admin == nil {
		return newNotFound("Admin")
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		return err
	}
	if err := s.Admins.SetResetCode(admin.Email, code, timeNow().Add(utils.ResetCodeTTL)); err != nil {
		return err
	}

	body := fmt.Sprintf("Your admin password reset code is %s. It will expire in 10 minutes.", code)
	if err := s.Mailer.Send(admin.Email, "Admin Password Reset Code", body); err != nil {
		utils.GetLogger().Error("ForgotAdminPassword: failed to send mail", zap.Error(err))
		return fmt.Errorf("failed to send reset code")
	}
	return nil
}

// ResetAdminPassword validates the reset code and replaces the password.
func (s *DefaultAuthService) ResetAdminPassword(email, code, newPassword string) error {
	if code == "" || newPassword == "" {
		return newInvalidRequest("code and newPassword are required")
	}

	admin, err := s.Admins.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to fetch admin: %w", err)
	}
	if admin == nil {
		return newNotFound("Admin")
	}
	if admin.ResetCode == "" || admin.ResetCode != code || admin.ResetCodeExpiry.Before(timeNow()) {
		return newInvalidRequest("Invalid or expired reset code")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Admins.UpdatePassword(admin.Email, string(hash)); err != nil {
		return err
	}
	s.dropToken(admin.Username)
	return nil
}

// GetAdminProfile returns the operator account for the principal.
func (s *DefaultAuthService) GetAdminProfile(username string) (*models.Admin, error) {
	admin, err := s.Admins.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, newNotFound("Admin")
	}
	return admin, nil
}

// UpdateAdminProfile updates username/email with uniqueness re-checks.
func (s *DefaultAuthService) UpdateAdminProfile(username string, update models.Admin) (*models.Admin, error) {
	admin, err := s.Admins.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, newNotFound("Admin")
	}

	if update.Email != "" && !strings.EqualFold(update.Email, admin.Email) {
		if existing, err := s.Admins.GetByEmail(update.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, newConflict("Email already exists")
		}
		admin.Email = strings.ToLower(strings.TrimSpace(update.Email))
	}

	if err := s.Admins.Update(admin); err != nil {
		return nil, err
	}
	return admin, nil
}
