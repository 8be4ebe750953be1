package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service"
)

// stubContactService records the last request and returns canned results.
type stubContactService struct {
	lastUpdate service.UpdateContactRequest
	lastOwner  string
	err        error
}

func (s *stubContactService) Create(
	_ context.Context, p *domain.User, req service.CreateContactRequest,
) (service.ContactResponse, error) {
	s.lastOwner = p.Username
	return service.ContactResponse{ID: "c-1", FirstName: req.FirstName}, s.err
}

func (s *stubContactService) Get(_ context.Context, p *domain.User, id string) (service.ContactResponse, error) {
	s.lastOwner = p.Username
	return service.ContactResponse{ID: id}, s.err
}

func (s *stubContactService) Update(
	_ context.Context, p *domain.User, req service.UpdateContactRequest,
) (service.ContactResponse, error) {
	s.lastOwner = p.Username
	s.lastUpdate = req
	return service.ContactResponse{ID: req.ID, FirstName: req.FirstName}, s.err
}

func (s *stubContactService) Delete(_ context.Context, p *domain.User, _ string) error {
	s.lastOwner = p.Username
	return s.err
}

func serveContact(
	t *testing.T, h *ContactHandler, method, target, body string, principal *domain.User,
) (*httptest.ResponseRecorder, shared.WebResponse) {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/contacts", h.Create)
	r.Get("/contacts/{contactID}", h.Get)
	r.Put("/contacts/{contactID}", h.Update)
	r.Delete("/contacts/{contactID}", h.Delete)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if principal != nil {
		req = req.WithContext(shared.WithPrincipal(req.Context(), principal))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp shared.WebResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestContactHandler_UpdateTakesIDFromPath(t *testing.T) {
	stub := &stubContactService{}
	h := NewContactHandler(stub)
	eko := &domain.User{Username: "eko"}

	rec, resp := serveContact(t, h, http.MethodPut, "/contacts/from-path",
		`{"id":"from-body","firstName":"Budi"}`, eko)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, resp.Errors)
	assert.Equal(t, "from-path", stub.lastUpdate.ID)
	assert.Equal(t, "Budi", stub.lastUpdate.FirstName)
	assert.Equal(t, "eko", stub.lastOwner)
}

func TestContactHandler_ServiceFailureIsOpaque(t *testing.T) {
	stub := &stubContactService{
		err: service.NewServiceError("contact", "get", errors.New("dial tcp 10.0.0.5:5432: connection refused")),
	}
	h := NewContactHandler(stub)

	rec, resp := serveContact(t, h, http.MethodGet, "/contacts/abc", "", &domain.User{Username: "eko"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, resp.Errors)
	assert.Equal(t, shared.InternalErrorMessage, *resp.Errors)
	assert.Nil(t, resp.Data)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestContactHandler_RequiresPrincipal(t *testing.T) {
	h := NewContactHandler(&stubContactService{})

	rec, resp := serveContact(t, h, http.MethodDelete, "/contacts/abc", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, resp.Errors)
	assert.Equal(t, "please login first", *resp.Errors)
}

func TestContactHandler_MalformedJSON(t *testing.T) {
	h := NewContactHandler(&stubContactService{})

	rec, resp := serveContact(t, h, http.MethodPost, "/contacts", `{"firstName": 42}`, &domain.User{Username: "eko"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Errors)
	assert.Equal(t, "malformed request body", *resp.Errors)
}

func TestEnvelopeAlwaysCarriesBothKeys(t *testing.T) {
	h := NewContactHandler(&stubContactService{})

	rec, _ := serveContact(t, h, http.MethodDelete, "/contacts/abc", "", &domain.User{Username: "eko"})

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.JSONEq(t, `"OK"`, string(raw["data"]))
	assert.Equal(t, "null", string(raw["errors"]))
}
