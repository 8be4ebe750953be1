package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    loginBody
		wantErr bool
	}{
		{"valid", `{"username":"eko","password":"rahasia"}`, loginBody{"eko", "rahasia"}, false},
		{"unknown fields ignored", `{"username":"eko","extra":true}`, loginBody{Username: "eko"}, false},
		{"empty body", ``, loginBody{}, false},
		{"truncated", `{"username":`, loginBody{}, true},
		{"wrong type", `{"username":42}`, loginBody{}, true},
		{"trailing value", `{"username":"eko"} {"username":"budi"}`, loginBody{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var got loginBody

			err := DecodeJSON(httptest.NewRecorder(), req, &got)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedBody)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSON_BodyTooLarge(t *testing.T) {
	body := `{"username":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var got loginBody
	err := DecodeJSON(httptest.NewRecorder(), req, &got)

	assert.ErrorIs(t, err, ErrMalformedBody)
}
