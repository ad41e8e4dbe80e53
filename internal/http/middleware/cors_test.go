package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func preflight(r *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCORSAllowsLocalDevOrigins(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	origins := []string{
		"http://localhost:5174",
		"http://127.0.0.1:5174",
	}

	for _, origin := range origins {
		origin := origin
		t.Run(origin, func(t *testing.T) {
			t.Parallel()
			r := gin.New()
			r.Use(CORS(nil))
			r.OPTIONS("/auth/login", func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			})

			rec := preflight(r, origin)
			if rec.Code != http.StatusNoContent {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNoContent)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != origin {
				t.Fatalf("unexpected allow-origin header: got=%q want=%q", got, origin)
			}
		})
	}
}

func TestCORSUsesConfiguredOrigins(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORS([]string{"https://blog.example.com"}))
	r.OPTIONS("/auth/login", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	rec := preflight(r, "https://blog.example.com")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://blog.example.com" {
		t.Fatalf("unexpected allow-origin header: got=%q", got)
	}

	rec = preflight(r, "http://localhost:5173")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("default origin leaked into configured list: %q", got)
	}
}
