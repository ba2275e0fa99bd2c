package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"ai-calendar-assistant/config"
	"ai-calendar-assistant/internal/middleware"
	"ai-calendar-assistant/pkg/log"
)

const testSecret = "test-secret"

func signToken(t *testing.T, subject, secret string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func newTestRouter(requireAuth bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.Init(log.ZapConfig{Level: "error", Encoding: "console"})
	mw := middleware.New(l, config.AuthConfig{JWTSecret: testSecret}, config.ChatConfig{})

	r := gin.New()
	guard := mw.OptionalAuth()
	if requireAuth {
		guard = mw.Auth()
	}
	r.GET("/probe", guard, func(c *gin.Context) {
		c.String(http.StatusOK, middleware.UserID(c))
	})
	return r
}

func probe(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthAcceptsValidToken(t *testing.T) {
	r := newTestRouter(true)
	w := probe(r, "Bearer "+signToken(t, "user-42", testSecret))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "user-42" {
		t.Errorf("user id = %q, want user-42", w.Body.String())
	}
}

func TestAuthRejects(t *testing.T) {
	r := newTestRouter(true)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signToken(t, "user-42", "other-secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := probe(r, tt.header); w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	r := newTestRouter(false)

	w := probe(r, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "" {
		t.Errorf("anonymous request should carry no identity, got %q", w.Body.String())
	}

	w = probe(r, "Bearer "+signToken(t, "user-7", testSecret))
	if w.Body.String() != "user-7" {
		t.Errorf("identity should attach when token valid, got %q", w.Body.String())
	}
}

func TestChatRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := log.Init(log.ZapConfig{Level: "error", Encoding: "console"})
	mw := middleware.New(l, config.AuthConfig{JWTSecret: testSecret}, config.ChatConfig{RateLimitPerMin: 2})

	r := gin.New()
	r.POST("/chat", mw.Auth(), mw.ChatRateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	header := "Bearer " + signToken(t, "user-1", testSecret)
	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/chat", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("third burst request status = %d, want 429", last)
	}
}

func TestChatRateLimiterRegistryIsBounded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := log.Init(log.ZapConfig{Level: "error", Encoding: "console"})
	mw := middleware.New(l, config.AuthConfig{JWTSecret: testSecret}, config.ChatConfig{
		RateLimitPerMin: 1,
		MaxSessions:     1,
	})

	r := gin.New()
	r.POST("/chat", mw.Auth(), mw.ChatRateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(user string) int {
		req := httptest.NewRequest(http.MethodPost, "/chat", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, user, testSecret))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if got := send("user-1"); got != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", got)
	}
	if got := send("user-1"); got != http.StatusTooManyRequests {
		t.Fatalf("exhausted bucket status = %d, want 429", got)
	}

	// A second user evicts the first from the single-entry registry, so the
	// first user gets a fresh bucket instead of the limiter map growing.
	if got := send("user-2"); got != http.StatusOK {
		t.Fatalf("second user status = %d, want 200", got)
	}
	if got := send("user-1"); got != http.StatusOK {
		t.Errorf("evicted user status = %d, want fresh bucket (200)", got)
	}
}
