package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "jumatrek/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body with unknown field", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodPost, "/", strings.NewReader(`{"name":"Juma","extra":1}`))
		var p payload
		require.NoError(t, DecodeJSON(req, &p))
		assert.Equal(t, "Juma", p.Name)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodPost, "/", strings.NewReader(`{"name":`))
		var p payload
		err := DecodeJSON(req, &p)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeInvalidInput, apperrors.AsAppError(err).Code)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodPost, "/", strings.NewReader(""))
		var p payload
		err := DecodeJSON(req, &p)
		require.Error(t, err)
		assert.Equal(t, "Request body is required", apperrors.AsAppError(err).Message)
	})

	t.Run("trailing document", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
		var p payload
		assert.Error(t, DecodeJSON(req, &p))
	})

	t.Run("body over limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(nethttp.MethodPost, "/", strings.NewReader(`{"name":"`+strings.Repeat("x", 64)+`"}`))
		req.Body = nethttp.MaxBytesReader(rec, req.Body, 16)
		var p payload
		err := DecodeJSON(req, &p)
		require.Error(t, err)
		assert.Equal(t, nethttp.StatusRequestEntityTooLarge, apperrors.AsAppError(err).StatusCode())
	})
}

func TestQueryInt(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    *int
		wantErr bool
	}{
		{name: "absent", query: "", want: nil},
		{name: "blank", query: "min_days=", want: nil},
		{name: "valid", query: "min_days=5", want: intPtr(5)},
		{name: "below minimum", query: "min_days=0", wantErr: true},
		{name: "not a number", query: "min_days=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(nethttp.MethodGet, "/api/treks?"+tt.query, nil)
			got, err := QueryInt(req, "min_days", 1)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, nethttp.StatusBadRequest, apperrors.AsAppError(err).StatusCode())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryBool(t *testing.T) {
	req := httptest.NewRequest(nethttp.MethodGet, "/api/treks?featured=TRUE", nil)
	got, err := QueryBool(req, "featured")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, *got)

	req = httptest.NewRequest(nethttp.MethodGet, "/api/treks?featured=maybe", nil)
	_, err = QueryBool(req, "featured")
	assert.Error(t, err)

	req = httptest.NewRequest(nethttp.MethodGet, "/api/treks", nil)
	got, err = QueryBool(req, "featured")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, apperrors.NotFoundWithID("Trek", "42"))

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"NOT_FOUND","message":"Trek not found","details":{"resource":"Trek","id":"42"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	WriteError(rec, assert.AnError)
	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func intPtr(v int) *int { return &v }
