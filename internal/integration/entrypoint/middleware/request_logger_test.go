package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRedactPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"no query", "/api/v1/budgets", "/api/v1/budgets"},
		{"query without token", "/api/v1/transactions?category=Food", "/api/v1/transactions?category=Food"},
		{"token only", "/api/v1/stream/budgets?access_token=secret", "/api/v1/stream/budgets?access_token=REDACTED"},
		{"token among filters", "/api/v1/export/transactions?format=csv&access_token=secret", "/api/v1/export/transactions?access_token=REDACTED&format=csv"},
		{"malformed query", "/api/v1/stream/budgets?access_token=%zz", "/api/v1/stream/budgets?REDACTED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := redactPath(tt.path); got != tt.want {
				t.Errorf("redactPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRequestLogger_RedactsAccessToken(t *testing.T) {
	var logs bytes.Buffer
	previous := gin.DefaultWriter
	gin.DefaultWriter = &logs
	t.Cleanup(func() { gin.DefaultWriter = previous })

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/api/v1/stream/:collection", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stream/budgets?access_token=eyJhbGciOi.secret", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	line := logs.String()
	if strings.Contains(line, "eyJhbGciOi.secret") {
		t.Fatalf("access log leaks the token: %s", line)
	}
	if !strings.Contains(line, "access_token=REDACTED") {
		t.Errorf("access log should show the redacted parameter: %s", line)
	}
}
