package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/services"
)

// NewRouter builds the gin engine with all routes attached.
func NewRouter(auth *services.AuthService, l logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	h := NewHandler(auth, l)
	h.RegisterRoutes(r)

	return r
}
