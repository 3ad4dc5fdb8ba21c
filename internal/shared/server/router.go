package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronniejay22/Knot-APP-sub000/internal/feedback"
	"github.com/ronniejay22/Knot-APP-sub000/internal/hints"
	"github.com/ronniejay22/Knot-APP-sub000/internal/recs"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/config"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/metrics"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/server/middleware"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/server/respond"
	"github.com/ronniejay22/Knot-APP-sub000/internal/vaults"
)

// RouterDeps are the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	VaultHandler    *vaults.Handler
	HintHandler     *hints.Handler
	RecsHandler     *recs.Handler
	FeedbackHandler *feedback.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.VaultHandler != nil {
		deps.VaultHandler.RegisterRoutes(api)
	}
	if deps.HintHandler != nil {
		deps.HintHandler.RegisterRoutes(api)
	}
	if deps.RecsHandler != nil {
		deps.RecsHandler.RegisterRoutes(api)
	}
	if deps.FeedbackHandler != nil {
		deps.FeedbackHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
