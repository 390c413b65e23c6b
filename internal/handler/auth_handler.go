package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/supabase-community/gotrue-go/types"

	"pnw-map/internal/infrastructure/database"
	"pnw-map/model"
)

// AuthHandler delegates sign-up, sign-in, sign-out and password reset to
// the external identity service. Results pass through as opaque
// {user|session, error} payloads.
type AuthHandler struct {
	client *database.SupabaseClient
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(client *database.SupabaseClient) *AuthHandler {
	return &AuthHandler{
		client: client,
	}
}

// SignUp POST /auth/signup - register a new account.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req model.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	resp, err := h.client.GetClient().Auth.Signup(types.SignupRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "auth_error",
			"message": "Sign up failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": resp.User})
}

// SignIn POST /auth/login - exchange credentials for a session.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	session, err := h.client.GetClient().SignInWithEmailPassword(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "auth_error",
			"message": "Sign in failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SignOut POST /auth/logout - invalidate the bearer session.
func (h *AuthHandler) SignOut(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "auth_error",
			"message": "Authorization bearer token is required",
		})
		return
	}

	if err := h.client.GetClient().Auth.WithToken(token).Logout(); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "auth_error",
			"message": "Sign out failed: " + err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// ForgotPassword POST /auth/forgot-password - trigger the reset email.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if err := h.client.GetClient().Auth.Recover(types.RecoverRequest{Email: req.Email}); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "auth_error",
			"message": "Password reset failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}
