package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jumatrek/pkg/logger"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandle(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusNoContent)
}

func serve(g *Gate, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	g.Require(okHandle)(rec, req, nil)
	return rec
}

func TestGate_OpenMode(t *testing.T) {
	g := NewGate("", nil, logger.Discard())
	assert.True(t, g.Open())

	rec := serve(g, httptest.NewRequest(http.MethodPost, "/api/treks", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGate_SharedKey(t *testing.T) {
	g := NewGate("k3y", nil, logger.Discard())
	require.False(t, g.Open())

	tests := []struct {
		name   string
		header map[string]string
		want   int
	}{
		{"missing header", nil, http.StatusUnauthorized},
		{"wrong key", map[string]string{AdminKeyHeader: "nope"}, http.StatusUnauthorized},
		{"correct key", map[string]string{AdminKeyHeader: "k3y"}, http.StatusNoContent},
		{"key as bearer", map[string]string{"Authorization": "Bearer k3y"}, http.StatusNoContent},
		{"wrong bearer", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/treks", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := serve(g, req)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				assert.JSONEq(t, `{"code":"UNAUTHORIZED","message":"Unauthorized"}`, rec.Body.String())
			}
		})
	}
}

func TestGate_BearerToken(t *testing.T) {
	issuer := NewTokenIssuer("jwt-secret", time.Hour)
	g := NewGate("", issuer, logger.Discard())
	require.False(t, g.Open())

	token, _, err := issuer.Issue(testAdmin())
	require.NoError(t, err)

	var seen *Claims
	handle := g.Require(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		seen, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	req.Header.Set("Authorization", "bearer "+token)
	rec := httptest.NewRecorder()
	handle(rec, req, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "ops@jumatrek.com", seen.Email)

	req = httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	req.Header.Set(AdminKeyHeader, "")
	rec = serve(g, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
