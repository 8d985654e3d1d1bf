package handler

import (
	"net/http"

	"jumatrek/internal/auth"
	"jumatrek/internal/inquiries/service"
	httputil "jumatrek/pkg/http"
	"jumatrek/pkg/logger"
	"jumatrek/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type InquiryHandler struct {
	service service.InquiryService
	gate    *auth.Gate
	log     *logger.Logger
	submit  []func(httprouter.Handle) httprouter.Handle
}

// NewInquiryHandler wraps the public submit route with submitMiddleware,
// outermost first.
func NewInquiryHandler(
	service service.InquiryService,
	gate *auth.Gate,
	log *logger.Logger,
	submitMiddleware ...func(httprouter.Handle) httprouter.Handle,
) *InquiryHandler {
	return &InquiryHandler{
		service: service,
		gate:    gate,
		log:     log,
		submit:  submitMiddleware,
	}
}

func (h *InquiryHandler) RegisterRoutes(router *httprouter.Router) {
	create := httprouter.Handle(h.Create)
	for i := len(h.submit) - 1; i >= 0; i-- {
		create = h.submit[i](create)
	}

	router.POST("/api/inquiries", create)
	router.GET("/api/inquiries", h.gate.Require(h.List))
}

func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var inq model.Inquiry
	if err := httputil.DecodeJSON(r, &inq); err != nil {
		httputil.WriteError(w, err)
		return
	}

	id, outcome, err := h.service.Create(r.Context(), &inq)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, httputil.MessageResponse{
		Message: service.SubmittedMessage + outcome.Note(),
		ID:      id,
	})
}

func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	inquiries, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w, inquiries)
}
