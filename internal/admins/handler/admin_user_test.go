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

type mockAdminService struct {
	createFunc func(ctx context.Context, req *model.CreateAdminRequest) (string, error)
	loginFunc  func(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

func (m *mockAdminService) CreateUser(ctx context.Context, req *model.CreateAdminRequest) (string, error) {
	return m.createFunc(ctx, req)
}

func (m *mockAdminService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	return m.loginFunc(ctx, req)
}

func newRouter(svc *mockAdminService, apiKey string, mw ...func(httprouter.Handle) httprouter.Handle) *httprouter.Router {
	log := logger.Discard()
	router := httprouter.New()
	NewAdminHandler(svc, auth.NewGate(apiKey, nil, log), log, mw...).RegisterRoutes(router)
	return router
}

func send(router http.Handler, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	svc := &mockAdminService{
		loginFunc: func(_ context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
			if req.Password != "secret" {
				return nil, apperrors.Unauthorized("Invalid credentials")
			}
			return &model.LoginResponse{
				Token:     "dev-admin",
				TokenType: "Bearer",
				User:      model.AdminUserView{ID: "65a1b2c3d4e5f60718293a4b", Email: req.Email},
			}, nil
		},
	}
	router := newRouter(svc, "k")

	rec := send(router, "/api/admin/login", `{"email":"ops@jumatrek.com","password":"secret"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"dev-admin","token_type":"Bearer","user":{"id":"65a1b2c3d4e5f60718293a4b","email":"ops@jumatrek.com"}}`, rec.Body.String())

	rec = send(router, "/api/admin/login", `{"email":"ops@jumatrek.com","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"code":"UNAUTHORIZED","message":"Invalid credentials"}`, rec.Body.String())
}

func TestLogin_MalformedBody(t *testing.T) {
	svc := &mockAdminService{
		loginFunc: func(context.Context, *model.LoginRequest) (*model.LoginResponse, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	rec := send(newRouter(svc, ""), "/api/admin/login", `{"email":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUser_RequiresAdmin(t *testing.T) {
	var got *model.CreateAdminRequest
	svc := &mockAdminService{
		createFunc: func(_ context.Context, req *model.CreateAdminRequest) (string, error) {
			got = req
			return "65a1b2c3d4e5f60718293a4c", nil
		},
	}
	router := newRouter(svc, "k")
	body := `{"email":"new@jumatrek.com","password":"pw","full_name":"New Guide"}`

	rec := send(router, "/api/admin/users", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, got)

	rec = send(router, "/api/admin/users", body, map[string]string{auth.AdminKeyHeader: "k"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"65a1b2c3d4e5f60718293a4c"}`, rec.Body.String())
	require.NotNil(t, got)
	require.NotNil(t, got.FullName)
	assert.Equal(t, "New Guide", *got.FullName)
}

func TestCreateUser_Conflict(t *testing.T) {
	svc := &mockAdminService{
		createFunc: func(context.Context, *model.CreateAdminRequest) (string, error) {
			return "", apperrors.Conflict("Admin user with this email already exists")
		},
	}

	rec := send(newRouter(svc, ""), "/api/admin/users", `{"email":"a@b.com","password":"pw"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginMiddlewareApplied(t *testing.T) {
	blocked := func(httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
			w.WriteHeader(http.StatusTooManyRequests)
		}
	}
	svc := &mockAdminService{
		loginFunc: func(context.Context, *model.LoginRequest) (*model.LoginResponse, error) {
			t.Fatal("login must be short-circuited")
			return nil, nil
		},
		createFunc: func(context.Context, *model.CreateAdminRequest) (string, error) {
			return "65a1b2c3d4e5f60718293a4c", nil
		},
	}
	router := newRouter(svc, "", blocked)

	assert.Equal(t, http.StatusTooManyRequests, send(router, "/api/admin/login", `{}`, nil).Code)
	assert.Equal(t, http.StatusCreated, send(router, "/api/admin/users", `{"email":"a@b.com","password":"pw"}`, nil).Code)
}
