package handlers

import (
	"context"
	"net/http"

	"github.com/codementor/codementor-api/internal/appstate"
	"github.com/codementor/codementor-api/internal/middleware"
	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/notify"
	"github.com/codementor/codementor-api/internal/services"
	appjwt "github.com/codementor/codementor-api/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, signup and logout
type AuthHandler struct {
	auth     services.AuthServiceInterface
	machines *appstate.Registry
	tokens   *appjwt.TokenManager
	cookie   middleware.SessionCookieConfig
	toasts   *notify.Service
}

// NewAuthHandler creates the auth handler
func NewAuthHandler(auth services.AuthServiceInterface, machines *appstate.Registry, tokens *appjwt.TokenManager, cookie middleware.SessionCookieConfig, toasts *notify.Service) *AuthHandler {
	return &AuthHandler{auth: auth, machines: machines, tokens: tokens, cookie: cookie, toasts: toasts}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	h.handleCredentials(c, h.auth.Login)
}

// Signup handles POST /auth/register
func (h *AuthHandler) Signup(c *gin.Context) {
	h.handleCredentials(c, h.auth.Signup)
}

func (h *AuthHandler) handleCredentials(c *gin.Context, resolve func(ctx context.Context, req models.LoginRequest) (*models.User, error)) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ParseValidationErrors(err)})
		return
	}

	user, err := resolve(c.Request.Context(), req)
	if err != nil {
		h.toasts.Add(err.Error(), notify.SeverityError)
		respondError(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	machine := h.machines.Get(user.ID)
	view, err := machine.Login(user)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetSessionCookie(c, h.cookie, token)
	h.toasts.Add("Welcome back!", notify.SeveritySuccess)

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"state": machine.State(),
		"view":  view,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.GetAppSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	machine := h.machines.Get(claims.UserID)
	machine.Logout()
	h.machines.Drop(claims.UserID)

	if err := h.auth.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	middleware.ClearSessionCookie(c, h.cookie)
	c.JSON(http.StatusOK, gin.H{"view": appstate.ViewAuth})
}

// SessionInfo handles GET /auth/session
func (h *AuthHandler) SessionInfo(c *gin.Context) {
	claims, ok := middleware.GetAppSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	machine := h.machines.Get(claims.UserID)
	c.JSON(http.StatusOK, gin.H{
		"userId": claims.UserID,
		"email":  claims.Email,
		"role":   claims.Role,
		"state":  machine.State(),
	})
}
