package handler

import (
	"net/http"

	"jumatrek/internal/auth"
	"jumatrek/internal/treks/service"
	httputil "jumatrek/pkg/http"
	"jumatrek/pkg/logger"
	"jumatrek/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type TrekHandler struct {
	service service.TrekService
	gate    *auth.Gate
	log     *logger.Logger
}

func NewTrekHandler(service service.TrekService, gate *auth.Gate, log *logger.Logger) *TrekHandler {
	return &TrekHandler{
		service: service,
		gate:    gate,
		log:     log,
	}
}

func (h *TrekHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/treks", h.List)
	router.GET("/api/treks/:id", h.GetByID)
	router.POST("/api/treks", h.gate.Require(h.Create))
	router.PUT("/api/treks/:id", h.gate.Require(h.Update))
	router.DELETE("/api/treks/:id", h.gate.Require(h.Delete))
}

func (h *TrekHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, err := parseFilter(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	treks, err := h.service.List(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w, treks)
}

func (h *TrekHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trek, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w, trek)
}

func (h *TrekHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var trek model.Trek
	if err := httputil.DecodeJSON(r, &trek); err != nil {
		httputil.WriteError(w, err)
		return
	}

	id, err := h.service.Create(r.Context(), &trek)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteCreated(w, httputil.IDResponse{ID: id})
}

func (h *TrekHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var trek model.Trek
	if err := httputil.DecodeJSON(r, &trek); err != nil {
		httputil.WriteError(w, err)
		return
	}

	updated, err := h.service.Update(r.Context(), ps.ByName("id"), &trek)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w, updated)
}

func (h *TrekHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w, httputil.IDResponse{ID: id})
}

func parseFilter(r *http.Request) (model.TrekFilter, error) {
	minDays, err := httputil.QueryInt(r, "min_days", 1)
	if err != nil {
		return model.TrekFilter{}, err
	}
	maxDays, err := httputil.QueryInt(r, "max_days", 1)
	if err != nil {
		return model.TrekFilter{}, err
	}
	featured, err := httputil.QueryBool(r, "featured")
	if err != nil {
		return model.TrekFilter{}, err
	}

	return model.TrekFilter{
		Region:     httputil.QueryString(r, "region"),
		Difficulty: httputil.QueryString(r, "difficulty"),
		MinDays:    minDays,
		MaxDays:    maxDays,
		Search:     httputil.QueryString(r, "search"),
		Featured:   featured,
	}, nil
}
