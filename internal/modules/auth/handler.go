package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"domainsmarket/internal/pkg/response"
	"domainsmarket/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// LoginUser: POST /auth/user/login.
func (h *Handler) LoginUser(c *gin.Context) {
	req, ok := bindLogin(c)
	if !ok {
		return
	}

	token, u, err := h.service.LoginUser(c.Request.Context(), req)
	if err != nil {
		h.writeLoginError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"token": token, "user": u})
}

// LoginAdmin: POST /auth/admin/login.
func (h *Handler) LoginAdmin(c *gin.Context) {
	req, ok := bindLogin(c)
	if !ok {
		return
	}

	token, a, err := h.service.LoginAdmin(c.Request.Context(), req)
	if err != nil {
		h.writeLoginError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"token": token, "admin": a})
}

// LogoutUser: POST /auth/user/logout.
func (h *Handler) LogoutUser(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "MISSING_TOKEN", "Authorization token required")
		return
	}
	if err := h.service.LogoutUser(c.Request.Context(), token); err != nil {
		response.Error(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Failed to log out")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// LogoutAdmin: POST /auth/admin/logout.
func (h *Handler) LogoutAdmin(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "MISSING_TOKEN", "Authorization token required")
		return
	}
	if err := h.service.LogoutAdmin(c.Request.Context(), token); err != nil {
		response.Error(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Failed to log out")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// ForgotPassword: POST /auth/user/forgot-password.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "RESET_FAILED", "Failed to send reset code")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reset code sent to your email"})
}

// ResetPassword: POST /auth/user/reset-password.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, ErrInvalidCode):
			response.Error(c, http.StatusBadRequest, "INVALID_CODE", "Invalid or expired reset code")
		default:
			response.Error(c, http.StatusInternalServerError, "RESET_FAILED", "Failed to reset password")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

func (h *Handler) writeLoginError(c *gin.Context, err error) {
	if errors.Is(err, ErrInvalidCredentials) {
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}
	response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
}

func bindLogin(c *gin.Context) (LoginRequest, bool) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return req, false
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return req, false
	}
	return req, true
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if after, found := strings.CutPrefix(header, "Bearer "); found {
		return after
	}
	return ""
}
