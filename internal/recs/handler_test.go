package recs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ronniejay22/Knot-APP-sub000/internal/vaults"
	"github.com/ronniejay22/Knot-APP-sub000/internal/weights"
)

func handlerRouter(t *testing.T, providers ...SourceProvider) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	vaultRepo := vaults.NewMemoryRepo()
	if err := vaultRepo.Upsert(context.Background(), testVault()); err != nil {
		t.Fatalf("seed vault: %v", err)
	}
	svc := &Service{
		Vaults:   vaultRepo,
		Weights:  weights.NewMemoryRepo(),
		Pipeline: testPipeline(providers...),
	}

	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func TestHandlerRecommendSuccess(t *testing.T) {
	router := handlerRouter(t, okProvider("events",
		Candidate{ID: "1", Source: "events", Type: TypeDate, Title: "candlelit jazz dinner", Merchant: "blue note", PriceCents: 4000},
		Candidate{ID: "2", Source: "events", Type: TypeGift, Title: "vinyl record crate", Merchant: "spin shop", PriceCents: 1500},
	))

	body := strings.NewReader(`{"occasion":"anniversary"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vaults/vault-1/recommendations", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		Recommendations []Candidate `json:"recommendations"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(payload.Recommendations))
	}
}

func TestHandlerRecommendMissingOccasion(t *testing.T) {
	router := handlerRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vaults/vault-1/recommendations", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestHandlerRecommendVaultNotFound(t *testing.T) {
	router := handlerRouter(t)

	body := strings.NewReader(`{"occasion":"birthday"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vaults/missing/recommendations", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestHandlerRecommendAllProvidersDown(t *testing.T) {
	router := handlerRouter(t, failProvider("a"))

	body := strings.NewReader(`{"occasion":"anniversary"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vaults/vault-1/recommendations", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestHandlerRecommendEverythingFiltered(t *testing.T) {
	router := handlerRouter(t, okProvider("events",
		Candidate{ID: "1", Source: "events", Title: "winery tour"},
	))

	body := strings.NewReader(`{"occasion":"anniversary"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vaults/vault-1/recommendations", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
}
