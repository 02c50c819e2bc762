package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notify-dispatch/internal/config"

	"github.com/gin-gonic/gin"
)

func TestRequireAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m, _ := NewManager(config.AuthConfig{JWTSecret: "secret"})
	tok, err := m.Issue(time.Now(), "app", "notifier")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var gotSubject, gotRole string
	r := gin.New()
	r.GET("/x", RequireAccessToken(m), func(c *gin.Context) {
		gotSubject, _ = Subject(c.Request.Context())
		gotRole, _ = Role(c.Request.Context())
		c.Status(http.StatusOK)
	})

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing", header: "", want: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not-a-token", want: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + tok, want: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	if gotSubject != "app" || gotRole != "notifier" {
		t.Fatalf("identity not injected: %q %q", gotSubject, gotRole)
	}
}
