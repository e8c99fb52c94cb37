package handlers

import (
	"net/http"

	"nextstop/middleware"
	"nextstop/models"
	"nextstop/services/auth"
	"nextstop/utils"

	"github.com/gin-gonic/gin"
)

// RegisterAdminHandler registers a new operator account.
func RegisterAdminHandler(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.RegisterAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		adm, err := svc.RegisterAdmin(req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Admin registered successfully", "admin": adm})
	}
}

// LoginAdminHandler authenticates an operator and issues a token.
func LoginAdminHandler(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		resp, err := svc.LoginAdmin(req.loginID(), req.Password)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ForgotAdminPasswordHandler issues a password reset code for an operator.
func ForgotAdminPasswordHandler(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		if err := svc.ForgotAdminPassword(req.Email); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password reset code sent to your email"})
	}
}

// ResetAdminPasswordHandler verifies an operator reset code and sets a new password.
func ResetAdminPasswordHandler(svc auth.Service) gin.HandlerFunc {
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
		if err := svc.ResetAdminPassword(req.Email, req.Code, req.NewPassword); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
	}
}

// GetAdminProfileHandler returns the authenticated operator's profile.
func GetAdminProfileHandler(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
			return
		}
		adm, err := svc.GetAdminProfile(principal.Username)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, adm)
	}
}

// UpdateAdminProfileHandler updates the authenticated operator's profile.
func UpdateAdminProfileHandler(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
			return
		}
		var update models.Admin
		if err := c.ShouldBindJSON(&update); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		adm, err := svc.UpdateAdminProfile(principal.Username, update)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, adm)
	}
}
