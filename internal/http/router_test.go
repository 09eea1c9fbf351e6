package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"dashkit/internal/catalog"
	"dashkit/internal/config"
	h "dashkit/internal/http/handlers"
	"dashkit/internal/repositories"
	"dashkit/internal/services"
	"dashkit/internal/store"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Auth.LoginLatency = 0
	cfg.Auth.SignupLatency = 0
	cfg.Auth.LoginRate = 100
	cfg.Auth.LoginBurst = 100
	for _, m := range mutate {
		m(&cfg)
	}

	kv := store.NewMemoryStore()
	cat, err := catalog.New(catalog.FixtureSources(), 32)
	require.NoError(t, err)
	views, err := services.NewViewService(cat.Registry, 16)
	require.NoError(t, err)

	auth := services.AuthService{
		Users:    repositories.NewKVUserRepository(kv),
		Sessions: kv,
		Secret:   []byte("test-secret"),
		TokenTTL: time.Hour,
		HashCost: bcrypt.MinCost,
	}
	require.NoError(t, auth.SeedDemoUsers(t.Context()))

	hd := &h.Handler{
		Auth:      auth,
		Prefs:     services.PreferencesService{KV: kv},
		Views:     views,
		Docs:      &services.DocumentService{KV: kv, Registry: cat.Registry, Uploads: cfg.Uploads},
		Export:    services.ExportService{Registry: cat.Registry},
		Dashboard: services.DashboardService{Catalog: cat},
		Catalog:   cat,
	}
	return &testServer{t: t, router: NewRouter(cfg, hd)}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(user, pass string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": user, "password": pass})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var res struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &res))
	return res.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type pageBody struct {
	Rows       []map[string]any `json:"rows"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
	PageIndex  int              `json:"pageIndex"`
	PageSize   int              `json:"pageSize"`
	CanAdvance bool             `json:"canAdvance"`
}

func TestHealthIsPublic(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestLoginFailure(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "Invalid username or password", body["message"])
	assert.Equal(t, "unauthorized", body["code"])
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/collections", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/collections", "not-a-jwt", nil).Code)
}

func TestListItemsLowStock(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "admin123")

	w := s.do(http.MethodGet, "/api/collections/items?"+url.Values{"filter[status]": {"Low Stock"}}.Encode(), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page := decode[pageBody](t, w)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 8, page.PageSize)
	assert.False(t, page.CanAdvance)
	assert.Len(t, page.Rows, 3)
}

func TestListOrdersSortedByTotal(t *testing.T) {
	s := newTestServer(t)
	token := s.login("jane", "jane123")

	w := s.do(http.MethodGet, "/api/collections/orders?sort=total&dir=asc", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[pageBody](t, w)
	require.Len(t, page.Rows, 7)
	first := page.Rows[0]["total"].(float64)
	for _, row := range page.Rows {
		assert.LessOrEqual(t, first, row["total"].(float64))
	}
}

func TestListNoMatch(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "admin123")
	w := s.do(http.MethodGet, "/api/collections/projects?search=zzz-nomatch", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[pageBody](t, w)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Rows)
	assert.False(t, page.CanAdvance)
}

func TestListBadQuery(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "admin123")

	for _, path := range []string{
		"/api/collections/items?page=abc",
		"/api/collections/items?sort=name&dir=sideways",
		"/api/collections/items?" + url.Values{"filter[colour]": {"red"}}.Encode(),
		"/api/collections/items?" + url.Values{"filter[status]": {"Active"}, "op[status]": {"bogus"}}.Encode(),
		"/api/collections/items?sort=sku",
	} {
		w := s.do(http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/collections/widgets", token, nil).Code)
}

func TestRecordSchemaAndStats(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "admin123")

	w := s.do(http.MethodGet, "/api/collections/orders/ORD-1047", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Acme Corp", decode[map[string]any](t, w)["customer"])
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/collections/orders/ORD-0", token, nil).Code)

	w = s.do(http.MethodGet, "/api/collections/team/schema", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	schema := decode[catalog.Descriptor](t, w)
	assert.Equal(t, 8, schema.PageSize)
	assert.Equal(t, []string{"name", "email"}, schema.SearchFields)

	w = s.do(http.MethodGet, "/api/collections/items/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Low Stock")

	w = s.do(http.MethodGet, "/api/collections", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[map[string][]catalog.Descriptor](t, w)["collections"], 7)
}

func TestExportPDF(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "admin123")

	w := s.do(http.MethodGet, "/api/collections/items/export.pdf?mode=all", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "items_all_")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w = s.do(http.MethodGet, "/api/collections/items/export.pdf?mode=some", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestViewLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "admin123")

	w := s.do(http.MethodPatch, "/api/views/items", token, map[string]any{
		"toggle": map[string]string{"fieldId": "status", "value": "Low Stock"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	st := decode[struct {
		Result  pageBody `json:"result"`
		Filters int      `json:"activeFilters"`
	}](t, w)
	assert.Equal(t, 3, st.Result.Total)
	assert.Equal(t, 1, st.Filters)

	w = s.do(http.MethodGet, "/api/views/items", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Low Stock")

	w = s.do(http.MethodDelete, "/api/views/items", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 12, decode[struct {
		Result pageBody `json:"result"`
	}](t, w).Result.Total)

	w = s.do(http.MethodPatch, "/api/views/items", token, map[string]any{"sort": map[string]any{"field": "sku", "direction": 1}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreferencesFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "admin123")

	w := s.do(http.MethodPost, "/api/preferences/pins", token, map[string]string{"menuId": "orders"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = s.do(http.MethodPut, "/api/preferences/theme", token, map[string]string{"theme": "dark"})
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(http.MethodPut, "/api/preferences/sidebar", token, map[string]bool{"collapsed": true})
	require.Equal(t, http.StatusOK, w.Code)

	prefs := decode[map[string]any](t, w)
	assert.Equal(t, "dark", prefs["theme"])
	assert.Equal(t, true, prefs["sidebarCollapsed"])
	assert.Equal(t, "orders", prefs["pinnedMenus"].([]any)[0])

	w = s.do(http.MethodGet, "/api/menu/pinned", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[map[string][]map[string]any](t, w)["items"], 6)

	w = s.do(http.MethodDelete, "/api/preferences/pins/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[map[string]any](t, w)["pinnedMenus"], 5)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, "/api/preferences/theme", token, map[string]string{"theme": "neon"}).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/preferences/pins", token, map[string]string{"menuId": "nope"}).Code)

	other := s.login("jane", "jane123")
	w = s.do(http.MethodGet, "/api/preferences", other, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "system", decode[map[string]any](t, w)["theme"])

	w = s.do(http.MethodGet, "/api/menu", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[map[string][]any](t, w)["groups"], 5)
}

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, ct := range files {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		hdr.Set("Content-Type", ct)
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte(strings.Repeat("x", 64)))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestDocumentsUpload(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "admin123")

	body, ct := multipartBody(t, map[string]string{"receipt.pdf": "application/pdf"})
	req := httptest.NewRequest(http.MethodPost, "/api/collections/orders/ORD-1047/documents", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	added := decode[map[string][]map[string]any](t, w)["documents"]
	require.Len(t, added, 1)
	docID := added[0]["id"].(string)

	w = s.do(http.MethodGet, "/api/collections/orders/ORD-1047/documents", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "receipt.pdf")
	assert.Contains(t, w.Body.String(), `"maxFiles":10`)

	body, ct = multipartBody(t, map[string]string{"notes.txt": "text/plain"})
	req = httptest.NewRequest(http.MethodPost, "/api/collections/orders/ORD-1047/documents", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `has an unsupported format.`)

	w = s.do(http.MethodDelete, "/api/collections/orders/ORD-1047/documents/"+docID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(http.MethodDelete, "/api/collections/orders/ORD-1047/documents/"+docID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardPages(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "admin123")

	for _, path := range []string{"/api/dashboard", "/api/analytics", "/api/inbox", "/api/messages", "/api/calendar", "/api/support"} {
		assert.Equal(t, http.StatusOK, s.do(http.MethodGet, path, token, nil).Code, path)
	}

	w := s.do(http.MethodGet, "/api/dashboard/activity?page=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[pageBody](t, w)
	assert.Len(t, page.Rows, 3)
	assert.False(t, page.CanAdvance)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/dashboard/activity?page=-1", token, nil).Code)
}

func TestSignupMeAndRoles(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/auth/signup", "", map[string]string{"name": "Sam Lee", "email": "sam@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = s.do(http.MethodPost, "/api/auth/signup", "", map[string]string{"name": "Sam Lee", "email": "sam@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusConflict, w.Code)

	member := s.login("sam@example.com", "secret1")
	w = s.do(http.MethodGet, "/api/auth/me", member, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dashboard.view"`)

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/users", member, nil).Code)
	admin := s.login("jane", "jane123")
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/users", admin, nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/api/collections/items/refresh", admin, nil).Code)
	owner := s.login("admin", "admin123")
	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/collections/items/refresh", owner, nil).Code)

	w = s.do(http.MethodPost, "/api/auth/forgot-password", "", map[string]string{"email": "ghost@example.com"})
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "admin123")
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodPost, "/api/auth/logout", token, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/auth/me", token, nil).Code)
}

func TestLoginRateLimit(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.Auth.LoginRate = 0.001
		c.Auth.LoginBurst = 2
	})
	creds := map[string]string{"username": "admin", "password": "wrong"}
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/auth/login", "", creds).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/auth/login", "", creds).Code)
	w := s.do(http.MethodPost, "/api/auth/login", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
