package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-personal-blog/internal/logger"
	"github.com/MKhiriev/go-personal-blog/internal/service"
	"github.com/MKhiriev/go-personal-blog/internal/session"
	"github.com/MKhiriev/go-personal-blog/models"
)

const testSessionTTL = time.Hour

// ---- Mock: ArticleService ----

type mockArticleSvc struct{}

func (m *mockArticleSvc) Create(_ context.Context, input service.CreateArticleInput) (models.Article, error) {
	return models.Article{Slug: input.Slug}, nil
}
func (m *mockArticleSvc) Get(_ context.Context, slug string) (models.Article, error) {
	return models.Article{Slug: slug, Title: "stub", Published: true}, nil
}
func (m *mockArticleSvc) Publish(_ context.Context, slug string) (models.Article, error) {
	return models.Article{Slug: slug, Published: true}, nil
}
func (m *mockArticleSvc) Unpublish(_ context.Context, slug string) (models.Article, error) {
	return models.Article{Slug: slug}, nil
}
func (m *mockArticleSvc) Delete(_ context.Context, _ string) error {
	return nil
}
func (m *mockArticleSvc) List(_ context.Context, _ service.SortField, _ bool) ([]models.Article, error) {
	return nil, nil
}
func (m *mockArticleSvc) ListPublished(_ context.Context, _ service.SortField, _ bool) ([]models.Article, error) {
	return nil, nil
}

// ---- Mock: AuthService ----

type mockAuthSvc struct{}

func (m *mockAuthSvc) VerifyAdminPassword(_ context.Context, _ string) error {
	return nil
}

// ---- Helpers ----

func newTestHandler(t *testing.T) (*Handler, *session.Manager) {
	t.Helper()

	sessions := session.NewManager(testSessionTTL, false, logger.Nop())
	h, err := NewHandler(&service.Services{
		ArticleService: &mockArticleSvc{},
		AuthService:    &mockAuthSvc{},
	}, sessions, logger.Nop())
	require.NoError(t, err)

	return h, sessions
}

func newTestRouter(t *testing.T) (http.Handler, *session.Manager) {
	t.Helper()
	h, sessions := newTestHandler(t)
	return h.Init(), sessions
}

// authenticatedRequest builds a request carrying a logged-in session cookie
// and, for state-changing methods, a valid CSRF token in the form body.
func authenticatedRequest(t *testing.T, sessions *session.Manager, method, path string) *http.Request {
	t.Helper()

	sess := sessions.Create()
	require.True(t, sessions.MarkAuthenticated(sess.ID))

	var req *http.Request
	if method == http.MethodGet {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, nil)
		form := req.URL.Query()
		form.Set(csrfFormField, sess.CSRFToken)
		req.URL.RawQuery = form.Encode()
	}
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})

	return req
}

// ---- Public routes: reachable without a session ----

func TestInit_PublicRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/articles/hello-world"},
		{http.MethodGet, "/admin/login"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Admin routes: anonymous sessions are redirected to login ----

func TestInit_AdminRoutes_RedirectAnonymousToLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/"},
		{http.MethodGet, "/admin/articles/create"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" without login → 302", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, "/admin/login", rr.Header().Get("Location"))
		})
	}
}

// ---- Admin routes: authenticated sessions pass through ----

func TestInit_AdminRoutes_PassWithAuthenticatedSession(t *testing.T) {
	router, sessions := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/"},
		{http.MethodGet, "/admin/articles/create"},
		{http.MethodPost, "/admin/articles/hello/publish"},
		{http.MethodPost, "/admin/articles/hello/unpublish"},
		{http.MethodPost, "/admin/articles/hello/delete"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" with session → not redirected to login", func(t *testing.T) {
			req := authenticatedRequest(t, sessions, tt.method, tt.path)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, "/admin/login", rr.Header().Get("Location"))
			assert.NotEqual(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nonexistent"},
		{http.MethodGet, "/articles/"},
		{http.MethodPost, "/articles/hello-world"},
		{http.MethodGet, "/totally/wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- X-Trace-ID is always present in the response ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// ---- Incoming X-Trace-ID is echoed back ----

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router, _ := newTestRouter(t)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}

// ---- First admin page view issues a session cookie ----

func TestInit_AdminRoutes_IssueSessionCookie(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	cookies := rr.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == session.CookieName {
			found = true
			assert.NotEmpty(t, c.Value)
			assert.True(t, c.HttpOnly)
			assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		}
	}
	assert.True(t, found, "first admin page view should set the session cookie")
}

// ---- Public routes never issue session cookies ----

func TestInit_PublicRoutes_NoSessionCookie(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Empty(t, rr.Result().Cookies())
}
