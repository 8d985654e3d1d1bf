package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jumatrek/internal/auth"
	"jumatrek/internal/notify"
	apperrors "jumatrek/pkg/errors"
	"jumatrek/pkg/logger"
	"jumatrek/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockInquiryService struct {
	outcome notify.Outcome
	err     error
	created []*model.Inquiry
}

func (m *mockInquiryService) Create(_ context.Context, inq *model.Inquiry) (string, notify.Outcome, error) {
	if m.err != nil {
		return "", notify.OutcomeSkipped, m.err
	}
	m.created = append(m.created, inq)
	return "65a1b2c3d4e5f60718293a4b", m.outcome, nil
}

func (m *mockInquiryService) List(context.Context) ([]*model.Inquiry, error) {
	return m.created, nil
}

func post(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreate_MessageCarriesOutcome(t *testing.T) {
	tests := []struct {
		outcome notify.Outcome
		want    string
	}{
		{notify.OutcomeSent, "Inquiry submitted successfully. Email notifications sent."},
		{notify.OutcomeQueued, "Inquiry submitted successfully. Email notifications queued."},
		{notify.OutcomeSkipped, "Inquiry submitted successfully. Email notifications skipped."},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			log := logger.Discard()
			router := httprouter.New()
			NewInquiryHandler(&mockInquiryService{outcome: tt.outcome}, auth.NewGate("k", nil, log), log).RegisterRoutes(router)

			rec := post(router, `{"name":"Asha","email":"asha@example.com","message":"hi","preferred_start_date":"2025-10-01"}`)

			require.Equal(t, http.StatusCreated, rec.Code)
			assert.JSONEq(t, `{"message":"`+tt.want+`","id":"65a1b2c3d4e5f60718293a4b"}`, rec.Body.String())
		})
	}
}

func TestCreate_ValidationError(t *testing.T) {
	log := logger.Discard()
	router := httprouter.New()
	svc := &mockInquiryService{err: apperrors.Validation("Validation failed", map[string]any{"email": "must be a valid email address"})}
	NewInquiryHandler(svc, auth.NewGate("", nil, log), log).RegisterRoutes(router)

	rec := post(router, `{"name":"Asha","email":"nope","message":"hi"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"code":"VALIDATION_ERROR","message":"Validation failed","details":{"email":"must be a valid email address"}}`, rec.Body.String())
}

func TestListIsAdminOnly(t *testing.T) {
	log := logger.Discard()
	router := httprouter.New()
	svc := &mockInquiryService{outcome: notify.OutcomeSkipped}
	NewInquiryHandler(svc, auth.NewGate("k", nil, log), log).RegisterRoutes(router)

	post(router, `{"name":"Asha","email":"asha@example.com","message":"hi"}`)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inquiries", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	req.Header.Set(auth.AdminKeyHeader, "k")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"asha@example.com"`)
}

func TestSubmitMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(name string) func(httprouter.Handle) httprouter.Handle {
		return func(next httprouter.Handle) httprouter.Handle {
			return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
				order = append(order, name)
				next(w, r, ps)
			}
		}
	}

	log := logger.Discard()
	router := httprouter.New()
	NewInquiryHandler(&mockInquiryService{outcome: notify.OutcomeSkipped}, auth.NewGate("", nil, log), log,
		mw("rate"), mw("idempotency")).RegisterRoutes(router)

	post(router, `{"name":"Asha","email":"asha@example.com","message":"hi"}`)
	assert.Equal(t, []string{"rate", "idempotency"}, order)
}
