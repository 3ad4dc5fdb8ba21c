package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.GET("/test", func(c *gin.Context) {
		c.Set("vaultId", "vault-1")
		c.Set("occasion", "anniversary")
		c.Set("pipelineStage", "availability")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = origStdout
	}()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	_ = w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read log output: %v", err)
	}
	os.Stdout = origStdout

	var entry map[string]any
	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatalf("expected a log line")
	}
	lines := strings.Split(line, "\n")
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("unmarshal log line %q: %v", line, err)
	}

	for _, field := range []string{"request_id", "method", "path", "status", "duration_ms", "vault_id", "occasion", "pipeline_stage"} {
		if _, ok := entry[field]; !ok {
			t.Fatalf("expected field %q in log entry %v", field, entry)
		}
	}
	if entry["vault_id"] != "vault-1" {
		t.Fatalf("expected vault_id vault-1, got %v", entry["vault_id"])
	}
}
