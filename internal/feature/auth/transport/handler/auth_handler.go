// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskplanner_backend/internal/api"
	"taskplanner_backend/internal/feature/auth/domain/entity"
	"taskplanner_backend/internal/feature/auth/transport/http/dto"
	"taskplanner_backend/internal/feature/auth/usecase"
	jwtmw "taskplanner_backend/internal/platform/jwt"
)

// AuthUsecase defines the authentication operations consumed by this handler.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns the user plus an access token.
	Signup(ctx context.Context, name, email, password, confirmPassword string) (*entity.User, string, error)
	// Login authenticates a user and returns the user plus an access token.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// Update applies a profile update for the given user.
	Update(ctx context.Context, userID uint, p usecase.UpdateParams) (*entity.User, error)
	// GetUser retrieves the user with the given ID.
	GetUser(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler handles the HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Error("please enter all the fields"))
		return
	}

	user, token, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, api.Error("user already exists"))
			return
		}
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	slog.Info("user signup successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "user created successfully",
		User:    dto.NewUserPayload(user),
		Token:   token,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Error("please enter all the fields"))
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, api.Error("user not found please register"))
			return
		}
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "user logged in successfully",
		User:    dto.NewUserPayload(user),
		Token:   token,
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so there is no
// server-side session to invalidate; the client simply discards its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, api.Message("logged out successfully"))
}

// Update handles PUT /api/auth/update.
func (h *AuthHandler) Update(c *gin.Context) {
	var req dto.UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Error("invalid request"))
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	user, err := h.auth.Update(c.Request.Context(), userID, usecase.UpdateParams{
		Name:        req.Name,
		NewEmail:    req.NewEmail,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		slog.Warn("update failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	slog.Info("user update successful", "user_id", userID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.UserResponse{
		Success: true,
		Message: "user credentials updated successfully",
		User:    dto.NewUserPayload(user),
	})
}

// GetUser handles GET /api/auth/user.
func (h *AuthHandler) GetUser(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	user, err := h.auth.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.Error("user not found"))
			return
		}
		slog.Error("get user failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.Error("server error: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		Success: true,
		Message: "user data fetched successfully",
		User:    dto.NewUserPayload(user),
	})
}
