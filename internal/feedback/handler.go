package feedback

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/server/respond"
)

// Handler exposes feedback recording and the admin learner trigger.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches feedback routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations/:id/feedback", h.record)
	rg.POST("/admin/weights/run", h.runLearner)
}

// RecordRequest is the feedback submission body.
type RecordRequest struct {
	UserID      string `json:"userId" binding:"required"`
	VaultID     string `json:"vaultId"`
	Action      string `json:"action" binding:"required"`
	Rating      *int   `json:"rating"`
	RecType     string `json:"recType"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *Handler) record(c *gin.Context) {
	var body RecordRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "userId and action are required", nil)
		return
	}

	entry, err := h.Svc.Record(c.Request.Context(), Entry{
		UserID:           body.UserID,
		VaultID:          body.VaultID,
		RecommendationID: c.Param("id"),
		Action:           body.Action,
		Rating:           body.Rating,
		RecType:          body.RecType,
		Title:            body.Title,
		Description:      body.Description,
	})
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_feedback", err.Error(), nil)
		return
	}

	respond.Created(c, gin.H{"id": entry.ID})
}

func (h *Handler) runLearner(c *gin.Context) {
	updated, err := h.Svc.RunLearner(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "learner_failed", "weight learner run failed", nil)
		return
	}
	respond.OK(c, gin.H{"usersUpdated": updated})
}
