package handler_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/business-admin/internal/config"
	"github.com/iliyamo/business-admin/internal/handler"
	"github.com/iliyamo/business-admin/internal/repository"
	"github.com/iliyamo/business-admin/internal/router"
	"github.com/iliyamo/business-admin/internal/store"
	"github.com/iliyamo/business-admin/internal/upload"
)

// testServer wires a full Echo instance over a fresh store, exactly
// as main does, minus Redis and the listener.
type testServer struct {
	e   *echo.Echo
	st  *store.Store
	cfg config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := config.Config{
		Env:            "test",
		Port:           "0",
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
		BcryptCost:     4, // bcrypt.MinCost keeps tests fast
		UploadDir:      t.TempDir(),
	}
	st := store.New()
	files, err := upload.NewSaver(cfg.UploadDir)
	require.NoError(t, err)

	users := repository.NewUserRepo(st)
	tokens := repository.NewTokenRepo(st)
	employees := repository.NewEmployeeRepo(st)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens, employees), cfg.JWTSecret)
	router.RegisterAPI(e, router.Handlers{
		Clients:   handler.NewClientHandler(repository.NewClientRepo(st)),
		Services:  handler.NewServiceHandler(repository.NewServiceRepo(st)),
		Projects:  handler.NewProjectHandler(repository.NewProjectRepo(st), repository.NewDocumentRepo(st), files),
		Contacts:  handler.NewContactHandler(repository.NewContactRepo(st)),
		FollowUps: handler.NewFollowUpHandler(repository.NewFollowUpRepo(st)),
		Employees: handler.NewEmployeeHandler(employees),
		Analytics: handler.NewAnalyticsHandler(repository.NewAnalyticsRepo(st)),
	}, cfg.JWTSecret, nil)
	return &testServer{e: e, st: st, cfg: cfg}
}

// do performs a request against the in-process router and returns the
// recorder.  A non-empty token goes into the Authorization header.
func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns a valid access token.
func (s *testServer) register(t *testing.T, username string) string {
	t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": username,
		"password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp struct {
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Access.Token)
	return resp.Access.Token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestUnauthenticatedRequestsGet401(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/api/clients", "/api/services", "/api/analytics/dashboard"} {
		rec := s.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
	rec := s.do(http.MethodGet, "/api/clients", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterLoginMe(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "admin")

	rec := s.do(http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var me map[string]any
	decode(t, rec, &me)
	assert.Equal(t, "Admin", me["role"], "an unlinked user acts as Admin")

	// Duplicate usernames are rejected.
	rec = s.do(http.MethodPost, "/api/auth/register", "", map[string]any{"username": "admin", "password": "x"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, "/api/auth/login", "", map[string]any{"username": "admin", "password": "s3cret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/auth/login", "", map[string]any{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshRotatesToken(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodPost, "/api/auth/register", "", map[string]any{"username": "admin", "password": "s3cret"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Refresh struct {
			Token string `json:"token"`
		} `json:"refresh"`
	}
	decode(t, rec, &resp)

	rec = s.do(http.MethodPost, "/api/auth/refresh", "", map[string]any{"refresh_token": resp.Refresh.Token})
	assert.Equal(t, http.StatusOK, rec.Code)

	// The old refresh token was revoked by the rotation.
	rec = s.do(http.MethodPost, "/api/auth/refresh", "", map[string]any{"refresh_token": resp.Refresh.Token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClientCRUDOverHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "admin")

	rec := s.do(http.MethodPost, "/api/clients", token, map[string]any{
		"name":    "Acme Co",
		"phone":   "555-0100",
		"address": "1 Main St",
		"type":    "Company",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]any
	decode(t, rec, &created)
	assert.Equal(t, float64(1), created["id"])

	rec = s.do(http.MethodGet, "/api/clients/1", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPut, "/api/clients/1", token, map[string]any{"phone": "555-0199"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]any
	decode(t, rec, &updated)
	assert.Equal(t, "555-0199", updated["phone"])
	assert.Equal(t, "Acme Co", updated["name"], "partial update must keep other fields")

	rec = s.do(http.MethodPut, "/api/clients/99", token, map[string]any{"phone": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, "/api/clients/1", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodDelete, "/api/clients/1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClientValidationErrors(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "admin")

	rec := s.do(http.MethodPost, "/api/clients", token, map[string]any{
		"name": "",
		"type": "Organization",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	decode(t, rec, &resp)
	fields := map[string]string{}
	for _, f := range resp.Fields {
		fields[f.Field] = f.Message
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "type")
}

func TestServiceSubscriptionEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "admin")

	rec := s.do(http.MethodPost, "/api/clients", token, map[string]any{"name": "Acme Co", "type": "Company"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = s.do(http.MethodPost, "/api/services", token, map[string]any{
		"name":      "Bookkeeping",
		"frequency": "Monthly",
		"basePrice": 120,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/clients/1/services", token, map[string]any{"serviceId": 1})
	assert.Equal(t, http.StatusCreated, rec.Code)
	// Idempotent re-add.
	rec = s.do(http.MethodPost, "/api/clients/1/services", token, map[string]any{"serviceId": 1})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/api/clients/1/services", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []map[string]any `json:"items"`
	}
	decode(t, rec, &list)
	assert.Len(t, list.Items, 1)

	rec = s.do(http.MethodDelete, "/api/clients/1/services/1", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodDelete, "/api/clients/1/services/1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, "/api/clients/1/services", token, map[string]any{"serviceId": 42})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployeeEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "admin")

	rec := s.do(http.MethodPost, "/api/employees", token, map[string]any{
		"name":  "John Doe",
		"email": "john@corp.test",
		"role":  "Manager",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var emp map[string]any
	decode(t, rec, &emp)
	assert.Equal(t, true, emp["active"], "employees default to active")

	rec = s.do(http.MethodPost, "/api/employees", token, map[string]any{
		"name":  "Other",
		"email": "john@corp.test",
		"role":  "Sales",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "duplicate email is a field error")

	rec = s.do(http.MethodPost, "/api/employees", token, map[string]any{
		"name":  "Ana Sales",
		"email": "ana@corp.test",
		"role":  "Sales",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/api/employees?role=Sales", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []map[string]any `json:"items"`
	}
	decode(t, rec, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Ana Sales", list.Items[0]["name"])

	// Assignments.
	rec = s.do(http.MethodPost, "/api/clients", token, map[string]any{"name": "Acme Co", "type": "Company"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = s.do(http.MethodPost, "/api/employees/1/clients/1", token, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
	rec = s.do(http.MethodGet, "/api/employees/1/clients", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &list)
	assert.Len(t, list.Items, 1)
	rec = s.do(http.MethodDelete, "/api/employees/1/clients/1", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodPost, "/api/employees/9/clients/1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFollowUpEndpointsAndFilters(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "admin")

	mk := func(desc, status string, employee int) {
		rec := s.do(http.MethodPost, "/api/followups", token, map[string]any{
			"description": desc,
			"employeeId":  employee,
			"dueDate":     "2026-09-15",
			"status":      status,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	mk("call acme", "Pending", 1)
	mk("send quote", "Done", 1)
	mk("invoice beta", "Pending", 2)

	rec := s.do(http.MethodGet, "/api/followups?status=Pending&employee=1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []map[string]any `json:"items"`
	}
	decode(t, rec, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "call acme", list.Items[0]["description"])
	assert.Equal(t, float64(1), list.Items[0]["createdBy"], "creator comes from the access token")

	// A follow-up may reference a client that does not exist.
	rec = s.do(http.MethodPost, "/api/followups", token, map[string]any{
		"description": "dangling",
		"employeeId":  7,
		"clientId":    999,
		"dueDate":     "2026-09-20",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/followups", token, map[string]any{"description": "", "dueDate": "bad"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardEndpoint(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "admin")

	rec := s.do(http.MethodPost, "/api/clients", token, map[string]any{"name": "Acme Co", "type": "Company"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = s.do(http.MethodPost, "/api/projects", token, map[string]any{
		"clientId":      1,
		"name":          "office move",
		"dateRequested": "2026-08-01",
		"price":         500,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/analytics/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats map[string]any
	decode(t, rec, &stats)
	assert.Equal(t, float64(1), stats["totalClients"])
	assert.Equal(t, float64(500), stats["totalRevenue"])
	assert.Equal(t, float64(0), stats["activeProjects"])

	rec = s.do(http.MethodPut, "/api/projects/1", token, map[string]any{"status": "In Progress"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/analytics/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &stats)
	assert.Equal(t, float64(1), stats["activeProjects"])
}

func TestContactLifecycleOverHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "admin")

	rec := s.do(http.MethodPost, "/api/contacts", token, map[string]any{
		"name":     "Lee Prospect",
		"phone":    "555-0142",
		"method":   "Phone",
		"response": "Positive",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Conversion succeeds even though client 41 does not exist.
	rec = s.do(http.MethodPost, "/api/contacts/1/convert", token, map[string]any{"clientId": 41})
	require.Equal(t, http.StatusOK, rec.Code)
	var contact map[string]any
	decode(t, rec, &contact)
	assert.Equal(t, true, contact["convertedToClient"])
	assert.Equal(t, float64(41), contact["convertedClientId"])

	rec = s.do(http.MethodPost, "/api/contacts/9/convert", token, map[string]any{"clientId": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/contacts?converted=true", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []map[string]any `json:"items"`
	}
	decode(t, rec, &list)
	assert.Len(t, list.Items, 1)
}

func TestProjectInvoiceAndDocumentsOverHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "admin")

	invoice := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 first"))
	rec := s.do(http.MethodPost, "/api/projects", token, map[string]any{
		"clientId":      1,
		"name":          "office move",
		"dateRequested": "2026-08-01",
		"price":         500,
		"invoice":       map[string]any{"filename": "invoice.pdf", "data": "data:application/pdf;base64," + invoice},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var proj map[string]any
	decode(t, rec, &proj)
	firstPath, _ := proj["invoiceFile"].(string)
	require.NotEmpty(t, firstPath)
	_, err := os.Stat(firstPath)
	require.NoError(t, err, "the invoice must land on disk")

	// Replacing the invoice removes the previous file.
	rec = s.do(http.MethodPut, "/api/projects/1", token, map[string]any{
		"invoice": map[string]any{"filename": "invoice-v2.pdf", "data": invoice},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &proj)
	secondPath, _ := proj["invoiceFile"].(string)
	require.NotEmpty(t, secondPath)
	assert.NotEqual(t, firstPath, secondPath)
	_, err = os.Stat(firstPath)
	assert.True(t, os.IsNotExist(err), "the replaced invoice must be gone")

	// Documents.
	rec = s.do(http.MethodPost, "/api/projects/1/documents", token, map[string]any{
		"filename": "contract.pdf",
		"data":     invoice,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var doc map[string]any
	decode(t, rec, &doc)
	docPath, _ := doc["filepath"].(string)
	require.NotEmpty(t, docPath)

	rec = s.do(http.MethodPost, "/api/projects/1/documents", token, map[string]any{"filename": "", "data": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(http.MethodPost, "/api/projects/9/documents", token, map[string]any{"filename": "x.pdf", "data": invoice})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/projects/1/documents", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []map[string]any `json:"items"`
	}
	decode(t, rec, &list)
	assert.Len(t, list.Items, 1)

	rec = s.do(http.MethodDelete, "/api/documents/1", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, err = os.Stat(docPath)
	assert.True(t, os.IsNotExist(err))

	// Deleting the project removes its invoice but never cascades to
	// document records.
	rec = s.do(http.MethodDelete, "/api/projects/1", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, err = os.Stat(secondPath)
	assert.True(t, os.IsNotExist(err))
}

// A malformed path id is indistinguishable from an unknown one: both
// answer not-found.
func TestMalformedPathIDAnswersNotFound(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "admin")

	for _, path := range []string{
		"/api/clients/abc",
		"/api/services/abc",
		"/api/projects/abc",
		"/api/contacts/abc",
		"/api/followups/abc",
		"/api/employees/abc",
	} {
		rec := s.do(http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}

	rec := s.do(http.MethodDelete, "/api/clients/abc", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMalformedQueryFilterIsRejected(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "admin")

	rec := s.do(http.MethodGet, "/api/followups?employee=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(http.MethodGet, "/api/followups?client=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(http.MethodGet, "/api/projects?client=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// An absent filter still means "no filter".
	rec = s.do(http.MethodGet, "/api/followups", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContactRequiresPhoneOrEmail(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "admin")

	rec := s.do(http.MethodPost, "/api/contacts", token, map[string]any{
		"name":     "Silent Lead",
		"method":   "Email",
		"response": "No Response",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
