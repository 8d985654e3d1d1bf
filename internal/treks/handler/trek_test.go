package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jumatrek/internal/auth"
	apperrors "jumatrek/pkg/errors"
	"jumatrek/pkg/logger"
	"jumatrek/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validID = "64b7f0c2a1b2c3d4e5f60718"

type mockTrekService struct {
	listFunc    func(ctx context.Context, filter model.TrekFilter) ([]*model.Trek, error)
	getByIDFunc func(ctx context.Context, id string) (*model.Trek, error)
	createFunc  func(ctx context.Context, trek *model.Trek) (string, error)
	updateFunc  func(ctx context.Context, id string, trek *model.Trek) (*model.Trek, error)
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockTrekService) List(ctx context.Context, filter model.TrekFilter) ([]*model.Trek, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return []*model.Trek{}, nil
}

func (m *mockTrekService) GetByID(ctx context.Context, id string) (*model.Trek, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &model.Trek{ID: id}, nil
}

func (m *mockTrekService) Create(ctx context.Context, trek *model.Trek) (string, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, trek)
	}
	return validID, nil
}

func (m *mockTrekService) Update(ctx context.Context, id string, trek *model.Trek) (*model.Trek, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, trek)
	}
	trek.ID = id
	return trek, nil
}

func (m *mockTrekService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func newRouter(svc *mockTrekService, adminKey string) *httprouter.Router {
	log := logger.Discard()
	router := httprouter.New()
	NewTrekHandler(svc, auth.NewGate(adminKey, nil, log), log).RegisterRoutes(router)
	return router
}

func do(router http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestList_ParsesQuery(t *testing.T) {
	var got model.TrekFilter
	router := newRouter(&mockTrekService{
		listFunc: func(_ context.Context, f model.TrekFilter) ([]*model.Trek, error) {
			got = f
			return []*model.Trek{}, nil
		},
	}, "")

	rec := do(router, http.MethodGet, "/api/treks?region=Everest&min_days=5&max_days=10&featured=true&search=ice", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	require.NotNil(t, got.Region)
	assert.Equal(t, "Everest", *got.Region)
	assert.Equal(t, 5, *got.MinDays)
	assert.Equal(t, 10, *got.MaxDays)
	assert.True(t, *got.Featured)
	assert.Equal(t, "ice", *got.Search)
	assert.Nil(t, got.Difficulty)
}

func TestList_RejectsBadQuery(t *testing.T) {
	router := newRouter(&mockTrekService{}, "")

	for _, q := range []string{"min_days=0", "max_days=abc", "featured=maybe"} {
		t.Run(q, func(t *testing.T) {
			rec := do(router, http.MethodGet, "/api/treks?"+q, "", nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetByID_Errors(t *testing.T) {
	router := newRouter(&mockTrekService{
		getByIDFunc: func(_ context.Context, id string) (*model.Trek, error) {
			if id == "not-an-id" {
				return nil, apperrors.InvalidID(id)
			}
			return nil, apperrors.NotFoundWithID("Trek", id)
		},
	}, "")

	rec := do(router, http.MethodGet, "/api/treks/not-an-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router, http.MethodGet, "/api/treks/"+validID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Trek not found"`)
}

func TestCreate(t *testing.T) {
	router := newRouter(&mockTrekService{}, "")

	rec := do(router, http.MethodPost, "/api/treks", `{"title":"EBC","unknown_field":1}`, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"`+validID+`"}`, rec.Body.String())

	rec = do(router, http.MethodPost, "/api/treks", `{"title":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRoutesRequireKey(t *testing.T) {
	router := newRouter(&mockTrekService{}, "s3cret")

	rec := do(router, http.MethodPost, "/api/treks", `{"title":"EBC"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(router, http.MethodDelete, "/api/treks/"+validID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(router, http.MethodPost, "/api/treks", `{"title":"EBC"}`, map[string]string{auth.AdminKeyHeader: "s3cret"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(router, http.MethodGet, "/api/treks", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code, "reads stay public")
}

func TestUpdateAndDelete(t *testing.T) {
	router := newRouter(&mockTrekService{}, "")

	rec := do(router, http.MethodPut, "/api/treks/"+validID, `{"title":"Annapurna Circuit"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Annapurna Circuit"`)
	assert.Contains(t, rec.Body.String(), `"id":"`+validID+`"`)

	rec = do(router, http.MethodDelete, "/api/treks/"+validID, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"`+validID+`"}`, rec.Body.String())
}
