package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/contacts-api/internal/platform/logger"
)

func TestRespondWithData(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithData(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK,
		map[string]string{"username": "eko"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"username":"eko"},"errors":null}`, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithError(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusUnauthorized, "please login first")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"data":null,"errors":"please login first"}`, rec.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"server error logs at error", http.StatusInternalServerError, `"level":"ERROR"`},
		{"client error logs at debug", http.StatusNotFound, `"level":"DEBUG"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := logger.GetTestLogger(t)
			req := httptest.NewRequest(http.MethodGet, "/contacts/1", nil)
			req = req.WithContext(logger.WithLogger(SetTraceID(req.Context()), log))
			rec := httptest.NewRecorder()

			err := errors.New("query failed: postgres://admin:hunter2@db:5432/contacts")
			RespondWithErrorAndLog(rec, req, tt.status, "internal server error", err)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, `{"data":null,"errors":"internal server error"}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "hunter2")

			logger.AssertLogContains(t, buf, tt.wantLevel)
			logger.AssertLogContains(t, buf, GetTraceID(req.Context()))
			logger.AssertLogNotContains(t, buf, "hunter2")
		})
	}
}
