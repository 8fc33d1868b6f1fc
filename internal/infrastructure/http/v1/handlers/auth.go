package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"aquagest/internal/domain/auth"
	"aquagest/internal/infrastructure/http/v1/dto"
)

// AuthHandler serves login, logout and session inspection.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers auth endpoints on the public and protected
// groups.
func (h *AuthHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/login", h.Login)
	public.GET("/session", h.Session)
	protected.POST("/logout", h.Logout)
}

// Login exchanges credentials for a session token.
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.Session.ExpiresAt.Format(time.RFC3339),
		User:      result.User,
	})
}

// Logout clears the durable session marker.
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "logged out")
}

// Session reports whether a persisted session is active.
// GET /auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	session, err := h.service.CurrentSession(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	if session == nil {
		h.OK(c, gin.H{"active": false})
		return
	}
	h.OK(c, gin.H{"active": true, "session": session})
}
