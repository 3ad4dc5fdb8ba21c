package recs

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/server/respond"
)

// Handler exposes the recommendation pipeline over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/vaults/:id/recommendations", h.recommend)
}

func (h *Handler) recommend(c *gin.Context) {
	vaultID := c.Param("id")
	c.Set("vaultId", vaultID)

	var body RecommendRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "occasion is required", nil)
		return
	}
	c.Set("occasion", body.Occasion)

	result, err := h.Svc.Recommend(c.Request.Context(), body.ToRequest(vaultID))
	if err != nil {
		switch {
		case errors.Is(err, ErrVaultNotFound):
			respond.Error(c, http.StatusNotFound, "vault_not_found", "vault not found", nil)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build recommendations", nil)
		}
		return
	}

	if result.ErrMessage != "" {
		status := http.StatusBadGateway
		if result.ErrMessage == ErrMsgAllFiltered {
			status = http.StatusUnprocessableEntity
		}
		respond.Error(c, status, "no_recommendations", result.ErrMessage, nil)
		return
	}

	respond.OK(c, gin.H{"recommendations": result.Recommendations})
}
