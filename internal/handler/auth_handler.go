package handler

import (
	"errors"
	"net/http"

	"github.com/adbridge/adbridge-backend/internal/common"
	"github.com/adbridge/adbridge-backend/internal/domain"
	"github.com/adbridge/adbridge-backend/internal/middleware"
	"github.com/adbridge/adbridge-backend/internal/service"
	"github.com/gin-gonic/gin"
)

const refreshCookieMaxAge = 7 * 24 * 3600

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	if req.Role == domain.RoleCreator && req.Handle == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "handle is required for creators", nil)
		return
	}
	if req.Role == domain.RoleAdvertiser && req.BrandName == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "brand_name is required for advertisers", nil)
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, common.ErrUserAlreadyExists) {
			common.ConflictResponse(c, "EMAIL_TAKEN", "An account with this email already exists")
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	h.setRefreshCookie(c, resp.RefreshToken)
	common.CreatedResponse(c, gin.H{
		"access_token": resp.AccessToken,
		"user":         resp.User,
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "Login failed", err)
		return
	}

	h.setRefreshCookie(c, resp.RefreshToken)
	common.SuccessResponse(c, gin.H{
		"access_token": resp.AccessToken,
		"user":         resp.User,
	})
}

// RefreshToken handles POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	// Try cookie first, then JSON body
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil || refreshToken == "" {
		var req refreshRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil || req.RefreshToken == "" {
			common.ErrorResponse(c, http.StatusUnauthorized, "Missing refresh token", nil)
			return
		}
		refreshToken = req.RefreshToken
	}

	resp, err := h.authService.RefreshToken(refreshToken)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "Token refresh failed", err)
		return
	}

	h.setRefreshCookie(c, resp.RefreshToken)
	common.SuccessResponse(c, gin.H{
		"access_token": resp.AccessToken,
		"user":         resp.User,
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("refresh_token", "", -1, "/", "", true, true)
	common.SuccessResponse(c, gin.H{"message": "logged out"})
}

// GetMe handles GET /api/v1/users/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	user, err := h.authService.GetCurrentUser(middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
		return
	}
	common.SuccessResponse(c, user)
}

// UpdateMe handles PATCH /api/v1/users/me
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	user, err := h.authService.UpdateProfile(middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "User not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update profile", err)
		return
	}
	common.SuccessResponse(c, user)
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie("refresh_token", token, refreshCookieMaxAge, "/", "", true, true)
}
