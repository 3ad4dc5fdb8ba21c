package vaults

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/server/respond"
)

// Handler exposes vault CRUD over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches vault routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/vaults/:id", h.save)
	rg.GET("/vaults/:id", h.get)
}

// SaveRequest is the vault upsert body.
type SaveRequest struct {
	UserID                string                 `json:"userId" binding:"required"`
	PartnerName           string                 `json:"partnerName"`
	Interests             []string               `json:"interests"`
	Dislikes              []string               `json:"dislikes"`
	Vibes                 []string               `json:"vibes"`
	PrimaryLoveLanguage   string                 `json:"primaryLoveLanguage"`
	SecondaryLoveLanguage string                 `json:"secondaryLoveLanguage"`
	Budgets               map[string]BudgetRange `json:"budgets"`
	Location              string                 `json:"location"`
}

func (h *Handler) save(c *gin.Context) {
	var body SaveRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "userId is required", nil)
		return
	}

	vault, err := h.Svc.Save(c.Request.Context(), Vault{
		ID:                    c.Param("id"),
		UserID:                body.UserID,
		PartnerName:           body.PartnerName,
		Interests:             body.Interests,
		Dislikes:              body.Dislikes,
		Vibes:                 body.Vibes,
		PrimaryLoveLanguage:   body.PrimaryLoveLanguage,
		SecondaryLoveLanguage: body.SecondaryLoveLanguage,
		Budgets:               body.Budgets,
		Location:              body.Location,
	})
	if err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "invalid_vault", err.Error(), nil)
		return
	}

	respond.OK(c, vault)
}

func (h *Handler) get(c *gin.Context) {
	vault, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "vault_not_found", "vault not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load vault", nil)
		return
	}
	respond.OK(c, vault)
}
