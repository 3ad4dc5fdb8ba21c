package feedback

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ronniejay22/Knot-APP-sub000/internal/weights"
)

func handlerRouter(t *testing.T) (*gin.Engine, *MemoryRepo, *weights.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	feedbackRepo := NewMemoryRepo()
	weightsRepo := weights.NewMemoryRepo()
	svc := &Service{
		Repo:    feedbackRepo,
		Learner: NewLearner(feedbackRepo, weightsRepo),
	}

	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return router, feedbackRepo, weightsRepo
}

func TestHandlerRecordFeedback(t *testing.T) {
	router, repo, _ := handlerRouter(t)

	body := strings.NewReader(`{
		"userId": "user-1",
		"vaultId": "vault-1",
		"action": "rated",
		"rating": 5,
		"recType": "date",
		"title": "candlelit dinner",
		"description": "romantic evening"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/rec-1/feedback", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	entries, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 stored entry, got %d", len(entries))
	}
	if entries[0].RecommendationID != "rec-1" {
		t.Fatalf("expected recommendation id from path, got %q", entries[0].RecommendationID)
	}
	if entries[0].Rating == nil || *entries[0].Rating != 5 {
		t.Fatalf("expected rating 5, got %v", entries[0].Rating)
	}
}

func TestHandlerRecordRejectsUnknownAction(t *testing.T) {
	router, _, _ := handlerRouter(t)

	body := strings.NewReader(`{"userId":"user-1","action":"poked"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/rec-1/feedback", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestHandlerRunLearner(t *testing.T) {
	router, repo, weightsRepo := handlerRouter(t)

	for _, title := range []string{"candlelit dinner", "sunset sail", "intimate wine pairing"} {
		rating := 5
		entry := Entry{
			UserID:  "user-1",
			Action:  ActionRated,
			Rating:  &rating,
			RecType: "date",
			Title:   title,
		}
		if err := repo.Create(context.Background(), entry); err != nil {
			t.Fatalf("create feedback: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/weights/run", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		UsersUpdated int `json:"usersUpdated"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.UsersUpdated != 1 {
		t.Fatalf("expected 1 user updated, got %d", payload.UsersUpdated)
	}

	if _, err := weightsRepo.GetByUserID(context.Background(), "user-1"); err != nil {
		t.Fatalf("expected stored weights after learner run: %v", err)
	}
}
