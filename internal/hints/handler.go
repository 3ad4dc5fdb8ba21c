package hints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/server/respond"
)

// Handler exposes hint capture and listing over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches hint routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/vaults/:id/hints", h.add)
	rg.GET("/vaults/:id/hints", h.list)
}

// AddRequest is the hint capture body.
type AddRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *Handler) add(c *gin.Context) {
	var body AddRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "content is required", nil)
		return
	}

	hint, err := h.Svc.Add(c.Request.Context(), c.Param("id"), body.Content)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_hint", err.Error(), nil)
		return
	}
	respond.Created(c, hint)
}

func (h *Handler) list(c *gin.Context) {
	hints, err := h.Svc.Recent(c.Request.Context(), c.Param("id"), 10)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list hints", nil)
		return
	}
	respond.OK(c, gin.H{"hints": hints})
}
