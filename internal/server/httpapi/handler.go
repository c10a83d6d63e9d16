// Package httpapi exposes the authentication operations over HTTP. It is
// deliberately thin: request decoding, status mapping, and the auth guard
// live here, everything else is delegated to the service layer.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/services"
)

type Handler struct {
	auth   *services.AuthService
	logger logging.Logger
}

func NewHandler(auth *services.AuthService, l logging.Logger) *Handler {
	return &Handler{
		auth:   auth,
		logger: l.With("module", "httpapi"),
	}
}

// credentialsRequest is the JSON body of both register and login calls.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRoutes attaches all routes to the router. The guarded group uses
// RequireAuth, so its handlers can rely on a resolved user in the context.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/account/register", h.registerUser)
	r.POST("/api/account/session", h.login)

	guarded := r.Group("/")
	guarded.Use(h.RequireAuth())
	guarded.POST("/api/account/logout", h.logout)
	guarded.GET("/protected", h.protected)
}

func (h *Handler) registerUser(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	_, err := h.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		return
	}

	h.logger.Info(c.Request.Context(), "user registered", "username", req.Username)
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": session.Token})
}

func (h *Handler) logout(c *gin.Context) {
	user := MustUserFromContext(c)

	if err := h.auth.Logout(c.Request.Context(), user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to logout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) protected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Protected route accessed successfully"})
}
