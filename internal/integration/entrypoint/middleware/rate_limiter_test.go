package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/domain/entity"
)

func newLimitedRouter(rl *RateLimiter, scope *entity.Scope) *gin.Engine {
	router := gin.New()
	if scope != nil {
		router.Use(func(c *gin.Context) {
			c.Set(string(ScopeKey), *scope)
			c.Next()
		})
	}
	router.Use(rl.Middleware())
	router.GET("/export", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func doRequest(router *gin.Engine, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_LimitsPerClient(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "false")

	rl := NewRateLimiterWithConfig(2, time.Minute)
	router := newLimitedRouter(rl, nil)

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i, status := range want {
		if got := doRequest(router, "10.0.0.1:1234"); got != status {
			t.Errorf("request %d status = %d, want %d", i+1, got, status)
		}
	}

	if got := doRequest(router, "10.0.0.2:1234"); got != http.StatusOK {
		t.Errorf("other client status = %d, want 200", got)
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "false")

	current := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(1, time.Minute)
	rl.now = func() time.Time { return current }
	router := newLimitedRouter(rl, nil)

	if got := doRequest(router, "10.0.0.1:1"); got != http.StatusOK {
		t.Fatalf("first status = %d", got)
	}
	if got := doRequest(router, "10.0.0.1:1"); got != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", got)
	}

	current = current.Add(2 * time.Minute)
	if got := doRequest(router, "10.0.0.1:1"); got != http.StatusOK {
		t.Errorf("status after window = %d, want 200", got)
	}

	current = current.Add(2 * time.Minute)
	rl.Cleanup()
	rl.mu.Lock()
	remaining := len(rl.entries)
	rl.mu.Unlock()
	if remaining != 0 {
		t.Errorf("entries after cleanup = %d, want 0", remaining)
	}
}

func TestRateLimiter_KeysUsersByScope(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "false")

	rl := NewRateLimiterWithConfig(1, time.Minute)
	user := entity.UserScope(uuid.New())
	router := newLimitedRouter(rl, &user)

	if got := doRequest(router, "10.0.0.1:1"); got != http.StatusOK {
		t.Fatalf("first status = %d", got)
	}
	// Same user from another address shares the budget.
	if got := doRequest(router, "10.0.0.9:1"); got != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", got)
	}
}

func TestRateLimiter_SkippedInTestEnvironment(t *testing.T) {
	t.Setenv("ENV", "test")

	rl := NewRateLimiterWithConfig(1, time.Minute)
	router := newLimitedRouter(rl, nil)

	for i := 0; i < 3; i++ {
		if got := doRequest(router, "10.0.0.1:1"); got != http.StatusOK {
			t.Errorf("request %d status = %d, want 200", i+1, got)
		}
	}
}
