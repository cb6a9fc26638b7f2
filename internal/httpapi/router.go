// Package httpapi serves the job views over REST
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobportal/internal/domain/auth"
	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/internal/view"
	"github.com/honeycarbs/jobportal/pkg/logging"
)

// DefaultSessionLimit bounds the number of open search sessions
const DefaultSessionLimit = 256

// Handler serves /api/v1
type Handler struct {
	catalog  catalog.Service
	auth     *auth.Service
	sessions *view.Registry[view.Search]
	logger   *logging.Logger
}

// NewHandler builds a REST handler. A nil auth service disables the
// /auth and /me routes.
func NewHandler(svc catalog.Service, authSvc *auth.Service, sessions *view.Registry[view.Search], logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Nop()
	}
	if sessions == nil {
		sessions = view.NewRegistry[view.Search](DefaultSessionLimit)
	}
	return &Handler{
		catalog:  svc,
		auth:     authSvc,
		sessions: sessions,
		logger:   logger.Named("httpapi"),
	}
}

// Router builds the gin engine. An empty origins list allows every origin.
func (h *Handler) Router(origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.accessLog())

	config := cors.DefaultConfig()
	if len(origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		api.GET("/healthz", h.health)

		api.GET("/search", h.search)
		api.POST("/search/sessions", h.openSearch)
		api.GET("/search/sessions/:id", h.getSearch)
		api.POST("/search/sessions/:id/events", h.searchEvents)
		api.DELETE("/search/sessions/:id", h.closeSearch)

		api.GET("/jobs", h.listJobs)
		api.GET("/companies", h.companies)
		api.GET("/companies/:id/jobs", h.companyJobs)
	}

	if h.auth != nil {
		api.GET("/me/jobs", h.myJobs)

		a := api.Group("/auth")
		a.POST("/login", h.login)
		a.POST("/register", h.register)
		a.POST("/logout", h.logout)
		a.POST("/forgot-password", h.forgotPassword)
		a.POST("/reset-password", h.resetPassword)
	}

	return r
}

// Close unmounts every open search session
func (h *Handler) Close() {
	h.sessions.Close()
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Debug("request served",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
