package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classhub/classhub-backend/internal/middleware"
	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/response"
	"github.com/classhub/classhub-backend/internal/service"
	"github.com/classhub/classhub-backend/internal/validator"
)

// AuthHandler handles registration, login, and profile introspection.
type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, userService *service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// Register godoc
// POST /api/v1/auth/register
// Creates an account and its profile, then signs the user in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	hash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	user := &model.User{
		Email:        req.Email,
		Name:         req.Name,
		Role:         req.Role,
		PasswordHash: hash,
		ClassID:      optional(req.ClassID),
		ParentID:     optional(req.ParentID),
	}

	if err := h.userService.CreateProfile(c.Request.Context(), user); err != nil {
		failDomain(c, err)
		return
	}

	token, err := h.authService.GenerateToken(c.Request.Context(), user)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, model.LoginResponse{Token: token, User: *user})
}

// Login godoc
// POST /api/v1/auth/login
// Exchanges email + password for a JWT and the profile.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		// Report unknown email and wrong password identically.
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(user.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateToken(c.Request.Context(), user)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, model.LoginResponse{Token: token, User: *user})
}

// Logout godoc
// POST /api/v1/auth/logout
// Invalidates the active session.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims.UserID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me godoc
// GET /api/v1/auth/me
// Returns the profile behind the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// optional maps an empty string to a nil pointer.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
