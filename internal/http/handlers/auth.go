package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dashkit/internal/domain/models"
	"dashkit/internal/http/middleware"
	"dashkit/internal/services"
)

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginInput
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := h.auth(c).Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/auth/signup
func (h *Handler) Signup(c *gin.Context) {
	var req models.SignupInput
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := h.auth(c).Signup(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created! You can now sign in with your credentials.",
		"user":    user,
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// POST /api/auth/forgot-password
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := h.auth(c).ForgotPassword(c.Request.Context(), req.Email); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"message": "If the email exists, you will receive a password reset link.",
	})
}

// POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	if err := h.auth(c).Logout(c.Request.Context(), middleware.CurrentUser(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/auth/me
func (h *Handler) Me(c *gin.Context) {
	rc := middleware.CurrentUser(c)
	user, err := h.auth(c).Me(c.Request.Context(), rc)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":        user,
		"permissions": services.Permissions(rc.Role),
	})
}

// GET /api/users
func (h *Handler) Users(c *gin.Context) {
	accounts, err := h.Auth.Users.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out := make([]models.User, len(accounts))
	for i, a := range accounts {
		out[i] = a.Public()
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}
