package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nextstop/models"
	"nextstop/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// timeNow is stubbed in tests that exercise reset-code expiry.
var timeNow = time.Now

// RegisterUser creates a new passenger account.
func (s *DefaultAuthService) RegisterUser(req RegisterUserRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" || req.FirstName == "" || req.MobileNo == "" {
		return nil, newInvalidRequest("username, email, password, firstName and mobileNo are required")
	}
	if req.Password != req.ConfirmPassword {
		return nil, newInvalidRequest("Passwords do not match")
	}

	if existing, err := s.Users.GetByUsername(req.Username); err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	} else if existing != nil {
		return nil, newConflict("Username or email already exists")
	}
	if existing, err := s.Users.GetByEmail(req.Email); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if existing != nil {
		return nil, newConflict("Username or email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		MobileNo:     req.MobileNo,
		AltMobileNo:  req.AltMobileNo,
		DOB:          req.DOB,
		Address:      req.Address,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginUser authenticates a passenger by username or email and issues a JWT.
func (s *DefaultAuthService) LoginUser(login, password string) (*AuthResponse, error) {
	if login == "" || password == "" {
		return nil, newInvalidRequest("Username and password are required")
	}

	user, err := s.Users.GetByLogin(login)
	if err != nil {
		utils.GetLogger().Error("LoginUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if user == nil {
		return nil, newUnauthorized("Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, newUnauthorized("Invalid username or password")
	}

	token, err := utils.GenerateToken(user.Username, user.Email, models.RoleUser, UserTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	s.cacheToken(user.Username, token, UserTokenTTL)

	return &AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Role:     models.RoleUser,
	}, nil
}

// ForgotUserPassword issues a reset code, stores it on the account with a TTL
// and mails it to the user.
func (s *DefaultAuthService) ForgotUserPassword(email string) error {
	user, err := s.Users.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return newNotFound("User")
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		return err
	}
	if err := s.Users.SetResetCode(user.Email, code, timeNow().Add(utils.ResetCodeTTL)); err != nil {
		return err
	}

	body := fmt.Sprintf("Your password reset code is %s. It will expire in 10 minutes.", code)
	if err := s.Mailer.Send(user.Email, "Password Reset Code", body); err != nil {
		utils.GetLogger().Error("ForgotUserPassword: failed to send mail", zap.Error(err))
		return fmt.Errorf("failed to send reset code")
	}
	return nil
}

// ResetUserPassword validates the reset code and replaces the password.
func (s *DefaultAuthService) ResetUserPassword(email, code, newPassword string) error {
	if code == "" || newPassword == "" {
		return newInvalidRequest("code and newPassword are required")
	}

	user, err := s.Users.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return newNotFound("User")
	}
	if user.ResetCode == "" || user.ResetCode != code || user.ResetCodeExpiry.Before(timeNow()) {
		return newInvalidRequest("Invalid or expired reset code")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Users.UpdatePassword(user.Email, string(hash)); err != nil {
		return err
	}
	s.dropToken(user.Username)
	return nil
}

// GetUserProfile returns the passenger account for the principal.
func (s *DefaultAuthService) GetUserProfile(username string) (*models.User, error) {
	user, err := s.Users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, newNotFound("User")
	}
	return user, nil
}

// UpdateUserProfile updates the mutable profile fields of the account.
func (s *DefaultAuthService) UpdateUserProfile(username string, update models.User) (*models.User, error) {
	user, err := s.Users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, newNotFound("User")
	}

	if update.FirstName != "" {
		user.FirstName = update.FirstName
	}
	if update.LastName != "" {
		user.LastName = update.LastName
	}
	if update.MobileNo != "" {
		user.MobileNo = update.MobileNo
	}
	if update.AltMobileNo != "" {
		user.AltMobileNo = update.AltMobileNo
	}
	if update.DOB != "" {
		user.DOB = update.DOB
	}
	if update.Address != "" {
		user.Address = update.Address
	}

	if err := s.Users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *DefaultAuthService) cacheToken(username, token string, ttl time.Duration) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Set(context.Background(), username, utils.HashToken(token), ttl); err != nil {
		utils.GetLogger().Warn("failed to cache token hash", zap.String("username", username), zap.Error(err))
	}
}

func (s *DefaultAuthService) dropToken(username string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), username); err != nil {
		utils.GetLogger().Warn("failed to drop cached token hash", zap.String("username", username), zap.Error(err))
	}
}
