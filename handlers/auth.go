package handlers

import (
	"net/http"

	"nextstop/middleware"
	"nextstop/models"
	"nextstop/services/auth"
	"nextstop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// loginRequest accepts a username or an email in the login field. The
// username key is kept for older clients.
type loginRequest struct {
	Login    string `json:"login"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) loginID() string {
	if r.Login != "" {
		return r.Login
	}
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

// RegisterUserHandler registers a new passenger account.
func RegisterUserHandler(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.RegisterUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		usr, err := svc.RegisterUser(req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": usr})
	}
}

// LoginUserHandler authenticates a passenger and issues a token.
func LoginUserHandler(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		resp, err := svc.LoginUser(req.loginID(), req.Password)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ForgotUserPasswordHandler issues a password reset code by email.
func ForgotUserPasswordHandler(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		if err := svc.ForgotUserPassword(req.Email); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password reset code sent to your email"})
	}
}

// ResetUserPasswordHandler verifies a reset code and sets a new password.
func ResetUserPasswordHandler(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email       string `json:"email"`
			Code        string `json:"code"`
			NewPassword string `json:"newPassword"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		if err := svc.ResetUserPassword(req.Email, req.Code, req.NewPassword); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
	}
}

// GetUserProfileHandler returns the authenticated passenger's profile.
func GetUserProfileHandler(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
			return
		}
		usr, err := svc.GetUserProfile(principal.Username)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, usr)
	}
}

// UpdateUserProfileHandler updates the authenticated passenger's profile.
func UpdateUserProfileHandler(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
			return
		}
		var update models.User
		if err := c.ShouldBindJSON(&update); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		usr, err := svc.UpdateUserProfile(principal.Username, update)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		logger.Info("User profile updated", zap.String("username", principal.Username))
		c.JSON(http.StatusOK, usr)
	}
}
