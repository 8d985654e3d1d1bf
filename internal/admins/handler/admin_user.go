package handler

import (
	"net/http"

	"jumatrek/internal/admins/service"
	"jumatrek/internal/auth"
	httputil "jumatrek/pkg/http"
	"jumatrek/pkg/logger"
	"jumatrek/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type AdminHandler struct {
	service service.AdminService
	gate    *auth.Gate
	log     *logger.Logger
	login   []func(httprouter.Handle) httprouter.Handle
}

// NewAdminHandler wraps the public login route with loginMiddleware,
// outermost first.
func NewAdminHandler(
	service service.AdminService,
	gate *auth.Gate,
	log *logger.Logger,
	loginMiddleware ...func(httprouter.Handle) httprouter.Handle,
) *AdminHandler {
	return &AdminHandler{
		service: service,
		gate:    gate,
		log:     log,
		login:   loginMiddleware,
	}
}

func (h *AdminHandler) RegisterRoutes(router *httprouter.Router) {
	login := httprouter.Handle(h.Login)
	for i := len(h.login) - 1; i >= 0; i-- {
		login = h.login[i](login)
	}

	router.POST("/api/admin/login", login)
	router.POST("/api/admin/users", h.gate.Require(h.CreateUser))
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CreateAdminRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	id, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteCreated(w, httputil.IDResponse{ID: id})
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w, resp)
}
