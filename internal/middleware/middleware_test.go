package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type stubAuth struct {
	user *domain.User
	err  error
}

func (s stubAuth) Authenticate(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func serve(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func whoami(c *ginext.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.String(http.StatusOK, "anonymous")
		return
	}
	c.String(http.StatusOK, user.ID)
}

func TestAuth(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleUser}

	tests := []struct {
		name   string
		auth   stubAuth
		header string
		want   int
	}{
		{"missing header", stubAuth{user: user}, "", http.StatusUnauthorized},
		{"wrong scheme", stubAuth{user: user}, "Basic abc", http.StatusUnauthorized},
		{"invalid token", stubAuth{err: domain.ErrInvalidToken}, "Bearer abc", http.StatusUnauthorized},
		{"store failure", stubAuth{err: assert.AnError}, "Bearer abc", http.StatusInternalServerError},
		{"valid", stubAuth{user: user}, "bearer abc", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ginext.New("test")
			r.GET("/x", Auth(tt.auth), whoami)

			w := serve(r, tt.header)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	r := ginext.New("test")
	r.GET("/x", OptionalAuth(stubAuth{err: domain.ErrInvalidToken}), whoami)

	w := serve(r, "Bearer expired")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestRequireRole(t *testing.T) {
	organizer := &domain.User{ID: "o1", Role: domain.RoleOrganizer}

	r := ginext.New("test")
	r.GET("/x", Auth(stubAuth{user: organizer}), RequireRole(domain.RoleAdmin), whoami)
	assert.Equal(t, http.StatusForbidden, serve(r, "Bearer t").Code)

	r = ginext.New("test")
	r.GET("/x", Auth(stubAuth{user: organizer}), RequireRole(domain.RoleOrganizer, domain.RoleAdmin), whoami)
	w := serve(r, "Bearer t")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "o1", w.Body.String())

	r = ginext.New("test")
	r.GET("/x", RequireRole(domain.RoleUser), whoami)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "").Code)
}

func TestRequestID(t *testing.T) {
	r := ginext.New("test")
	r.GET("/x", RequestID(), func(c *ginext.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = serve(r, "")
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(Recovery(newTestLogger(t)))
	r.GET("/x", func(*ginext.Context) { panic("boom") })

	w := serve(r, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"internal server error"}`, w.Body.String())
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewNop()

	r := ginext.New("test")
	r.Use(Metrics(m))
	r.GET("/events/:id", func(c *ginext.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events/123", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/events/:id", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}
